package workflow

import (
	"context"
	"fmt"

	"teamboard/internal/model"
	"teamboard/internal/notify"

	"github.com/google/uuid"
)

// MoveUpdate is the atomic write produced by a successful move: the moved
// card's new column, the full renumbering of both touched columns, and the
// optional auto-assign side effect. Stores must commit all of it or none.
type MoveUpdate struct {
	CardID         uuid.UUID
	TargetColumnID uuid.UUID
	Placements     []Placement
	AssigneeID     *uuid.UUID
}

type CardStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	ListByColumn(ctx context.Context, columnID uuid.UUID) ([]model.Card, error)
	ApplyMove(ctx context.Context, update MoveUpdate) error
	SetApproved(ctx context.Context, cardID uuid.UUID, approved bool) error
}

type ColumnStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	FindByStage(ctx context.Context, boardID uuid.UUID, stage string) (*model.Column, error)
}

type BoardStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
}

type MembershipStore interface {
	GetMembership(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamMember, error)
}

// Service orchestrates card moves: permission, WIP capacity, workflow gate,
// reordering, atomic commit. A failed gate performs no writes.
type Service struct {
	cards    CardStore
	columns  ColumnStore
	boards   BoardStore
	members  MembershipStore
	notifier notify.Notifier
}

func NewService(cards CardStore, columns ColumnStore, boards BoardStore, members MembershipStore, notifier notify.Notifier) *Service {
	return &Service{
		cards:    cards,
		columns:  columns,
		boards:   boards,
		members:  members,
		notifier: notifier,
	}
}

// moveContext is the resolved state every move variant starts from.
type moveContext struct {
	card       *model.Card
	source     *model.Column
	board      *model.Board
	membership *model.TeamMember // actor's membership in the card's team, nil if none
}

func (s *Service) resolve(ctx context.Context, actorID, cardID uuid.UUID) (*moveContext, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("load card: %w", err)
	}
	if card == nil {
		return nil, ErrNotFound
	}

	source, err := s.columns.GetByID(ctx, card.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("load source column: %w", err)
	}
	if source == nil {
		return nil, ErrNotFound
	}

	board, err := s.boards.GetByID(ctx, source.BoardID)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	if board == nil {
		return nil, ErrNotFound
	}

	var membership *model.TeamMember
	if card.TeamID != nil {
		membership, err = s.members.GetMembership(ctx, *card.TeamID, actorID)
		if err != nil {
			return nil, fmt.Errorf("load membership: %w", err)
		}
	}

	return &moveContext{card: card, source: source, board: board, membership: membership}, nil
}

// visible reports whether the actor may see the card at all: board owners
// see everything on their board, team members see their team's cards.
func (mc *moveContext) visible(actorID uuid.UUID) bool {
	if mc.board.OwnerID == actorID {
		return true
	}
	return mc.card.HasTeam() && mc.membership != nil
}

// MoveCard moves a card to targetIndex within the target column, applying
// the permission matrix, the WIP limit and the workflow gate in that order.
// Gates run against the card's un-mutated state; any refusal leaves both
// columns untouched.
func (s *Service) MoveCard(ctx context.Context, actorID, cardID, targetColumnID uuid.UUID, targetIndex int) error {
	mc, err := s.resolve(ctx, actorID, cardID)
	if err != nil {
		return err
	}
	if !mc.visible(actorID) {
		return ErrNotFound
	}

	target, err := s.columns.GetByID(ctx, targetColumnID)
	if err != nil {
		return fmt.Errorf("load target column: %w", err)
	}
	if target == nil || target.BoardID != mc.board.ID {
		return ErrNotFound
	}

	cross := mc.source.ID != target.ID

	if cross {
		if perm := CanMove(mc.card, mc.membership, mc.source, target); !perm.Allowed {
			s.notifier.Error(perm.Reason)
			return &PermissionDeniedError{Reason: perm.Reason}
		}
	}

	targetCards, err := s.cards.ListByColumn(ctx, target.ID)
	if err != nil {
		return fmt.Errorf("list target cards: %w", err)
	}

	if wip := CheckCapacity(target, len(targetCards), cross); !wip.Allowed {
		s.notifier.Error(wip.Reason)
		return &WipLimitError{Reason: wip.Reason}
	}

	gate := CheckEntry(mc.card, target, actorID)
	if !gate.Admitted {
		s.notifier.Error(gate.Reason)
		return &WorkflowRejectedError{Reason: gate.Reason}
	}

	sourceCards := targetCards
	if cross {
		sourceCards, err = s.cards.ListByColumn(ctx, mc.source.ID)
		if err != nil {
			return fmt.Errorf("list source cards: %w", err)
		}
	}

	update := MoveUpdate{
		CardID:         cardID,
		TargetColumnID: target.ID,
		Placements:     Reorder(sourceCards, targetCards, cardID, mc.source.ID, target.ID, targetIndex),
		AssigneeID:     gate.AssigneeID,
	}
	if err := s.cards.ApplyMove(ctx, update); err != nil {
		return fmt.Errorf("apply move: %w", err)
	}

	if gate.AssigneeID != nil {
		s.notifier.Success("Card auto-assigned to you.")
	}
	return nil
}

// ClaimCard assigns an unowned Ready card to the actor and moves it to the
// end of the Doing column on the same board.
func (s *Service) ClaimCard(ctx context.Context, actorID, cardID uuid.UUID) error {
	mc, err := s.resolve(ctx, actorID, cardID)
	if err != nil {
		return err
	}

	if mc.source.Stage != model.StageReady {
		reason := "Can only claim cards in Ready status"
		s.notifier.Error(reason)
		return &WorkflowRejectedError{Reason: reason}
	}
	if mc.card.AssigneeID != nil {
		reason := "Card is already assigned"
		s.notifier.Error(reason)
		return &WorkflowRejectedError{Reason: reason}
	}
	if mc.card.HasTeam() && mc.membership == nil {
		reason := "You must be a team member to claim this card"
		s.notifier.Error(reason)
		return &PermissionDeniedError{Reason: reason}
	}

	doing, err := s.columns.FindByStage(ctx, mc.board.ID, model.StageDoing)
	if err != nil {
		return fmt.Errorf("find doing column: %w", err)
	}
	if doing == nil {
		return ErrNotFound
	}

	return s.advance(ctx, mc, doing, &actorID, "Task claimed! It's now in Your Tasks.")
}

// SubmitForReview moves the actor's own Doing card to the end of the
// Review column. Only the current assignee may submit.
func (s *Service) SubmitForReview(ctx context.Context, actorID, cardID uuid.UUID) error {
	mc, err := s.resolve(ctx, actorID, cardID)
	if err != nil {
		return err
	}

	if mc.card.AssigneeID == nil || *mc.card.AssigneeID != actorID {
		reason := "Only the assignee can submit this card for review"
		s.notifier.Error(reason)
		return &PermissionDeniedError{Reason: reason}
	}
	if mc.source.Stage != model.StageDoing {
		reason := "Can only submit cards that are in Doing"
		s.notifier.Error(reason)
		return &WorkflowRejectedError{Reason: reason}
	}

	review, err := s.columns.FindByStage(ctx, mc.board.ID, model.StageReview)
	if err != nil {
		return fmt.Errorf("find review column: %w", err)
	}
	if review == nil {
		return ErrNotFound
	}

	return s.advance(ctx, mc, review, nil, "Submitted for review! A lead will check it.")
}

// advance commits a WIP-checked move to the end of the target column,
// optionally setting the assignee in the same transaction.
func (s *Service) advance(ctx context.Context, mc *moveContext, target *model.Column, assigneeID *uuid.UUID, successMsg string) error {
	targetCards, err := s.cards.ListByColumn(ctx, target.ID)
	if err != nil {
		return fmt.Errorf("list target cards: %w", err)
	}

	if wip := CheckCapacity(target, len(targetCards), true); !wip.Allowed {
		s.notifier.Error(wip.Reason)
		return &WipLimitError{Reason: wip.Reason}
	}

	sourceCards, err := s.cards.ListByColumn(ctx, mc.source.ID)
	if err != nil {
		return fmt.Errorf("list source cards: %w", err)
	}

	update := MoveUpdate{
		CardID:         mc.card.ID,
		TargetColumnID: target.ID,
		Placements:     Reorder(sourceCards, targetCards, mc.card.ID, mc.source.ID, target.ID, len(targetCards)),
		AssigneeID:     assigneeID,
	}
	if err := s.cards.ApplyMove(ctx, update); err != nil {
		return fmt.Errorf("apply move: %w", err)
	}

	s.notifier.Success(successMsg)
	return nil
}

// ApproveCard records lead approval on the card. It never moves the card;
// Review→Done remains a separate lead-only move.
func (s *Service) ApproveCard(ctx context.Context, actorID, cardID uuid.UUID) error {
	mc, err := s.resolve(ctx, actorID, cardID)
	if err != nil {
		return err
	}

	if !mc.card.HasTeam() || mc.membership == nil || !mc.membership.IsLead() {
		reason := "Only team leads can approve cards"
		s.notifier.Error(reason)
		return &PermissionDeniedError{Reason: reason}
	}

	if err := s.cards.SetApproved(ctx, cardID, true); err != nil {
		return fmt.Errorf("approve card: %w", err)
	}

	s.notifier.Success("Card approved")
	return nil
}
