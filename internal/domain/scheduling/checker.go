package scheduling

import (
	"context"
	"fmt"
	"slices"
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/pkg/clock"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const displayLayout = "2006-01-02 15:04"

// ConflictChecker decides whether a candidate booking is legal. It holds no
// per-call state and is safe for concurrent use.
type ConflictChecker struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewConflictChecker(repo BookingRepository, clk clock.Clock) *ConflictChecker {
	return &ConflictChecker{repo: repo, clock: clk}
}

// Check runs every check against the store and returns the conflicts in check
// order. Store failures are returned as errors, never as conflicts.
func (c *ConflictChecker) Check(ctx context.Context, candidate booking.Candidate, policy Policy) (*Result, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	slot, err := candidate.Range()
	if err != nil {
		return nil, booking.ErrInvalidCandidate
	}

	// one slot per check keeps display order independent of completion order
	var found [6][]Conflict

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		found[0], err = c.checkProfessionalBusy(gctx, candidate, slot, policy)
		return err
	})
	if candidate.ClientID != nil {
		g.Go(func() (err error) {
			found[1], err = c.checkClientBusy(gctx, candidate, slot, policy)
			return err
		})
	}
	g.Go(func() (err error) {
		found[2], err = c.checkBlockedTime(gctx, candidate, slot, policy)
		return err
	})
	g.Go(func() (err error) {
		found[3], err = c.checkWorkingHours(gctx, candidate, slot, policy)
		return err
	})
	if len(candidate.ResourceIDs) > 0 {
		g.Go(func() (err error) {
			found[4], err = c.checkResources(gctx, candidate, slot, policy)
			return err
		})
	}
	found[5] = checkAdvanceWindow(c.clock.Now(), candidate.Start, policy)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Conflicts: make([]Conflict, 0)}
	for _, group := range found {
		result.Conflicts = append(result.Conflicts, group...)
	}
	return result, nil
}

func (c *ConflictChecker) checkProfessionalBusy(ctx context.Context, candidate booking.Candidate, slot booking.TimeRange, policy Policy) ([]Conflict, error) {
	existing, err := c.repo.FindOverlappingByProfessional(ctx, candidate.TenantID, candidate.ProfessionalID, slot, candidate.ExcludeID)
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for _, b := range activeOverlapping(existing, slot, candidate.ExcludeID) {
		client := b.ClientName
		if client == "" {
			client = "another client"
		}
		conflicts = append(conflicts, bookingConflict(
			KindProfessionalBusy, SeverityError, b, nil,
			fmt.Sprintf("Professional already has an appointment with %s from %s", client, formatRange(b.TimeRange, policy)),
		))
	}
	return conflicts, nil
}

func (c *ConflictChecker) checkClientBusy(ctx context.Context, candidate booking.Candidate, slot booking.TimeRange, policy Policy) ([]Conflict, error) {
	existing, err := c.repo.FindOverlappingByClient(ctx, candidate.TenantID, *candidate.ClientID, slot, candidate.ExcludeID)
	if err != nil {
		return nil, err
	}

	severity := policy.ClientDoubleBookingSeverity
	if !severity.IsValid() {
		severity = SeverityWarning
	}

	var conflicts []Conflict
	for _, b := range activeOverlapping(existing, slot, candidate.ExcludeID) {
		conflicts = append(conflicts, bookingConflict(
			KindClientBusy, severity, b, nil,
			fmt.Sprintf("Client already has an appointment from %s", formatRange(b.TimeRange, policy)),
		))
	}
	return conflicts, nil
}

func (c *ConflictChecker) checkBlockedTime(ctx context.Context, candidate booking.Candidate, slot booking.TimeRange, policy Policy) ([]Conflict, error) {
	blocks, err := c.repo.FindOverlappingTimeBlocks(ctx, candidate.TenantID, candidate.ProfessionalID, slot)
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for _, block := range blocks {
		if !block.TimeRange.Overlaps(slot) {
			continue
		}
		desc := "Professional is unavailable from " + formatRange(block.TimeRange, policy)
		if block.Reason != nil && *block.Reason != "" {
			desc += ": " + *block.Reason
		}
		tr := block.TimeRange
		conflicts = append(conflicts, Conflict{
			Kind:        KindBlockedTime,
			TimeRange:   &tr,
			Description: desc,
			Severity:    SeverityError,
		})
	}
	return conflicts, nil
}

func (c *ConflictChecker) checkWorkingHours(ctx context.Context, candidate booking.Candidate, slot booking.TimeRange, policy Policy) ([]Conflict, error) {
	local := policy.locate(slot.Start())
	localSlot := slot.In(local.Location())

	schedule, err := c.repo.FindWorkingSchedule(ctx, candidate.TenantID, candidate.ProfessionalID, local.Weekday())
	if err != nil {
		return nil, err
	}
	if schedule == nil || !schedule.Enabled {
		return []Conflict{{
			Kind:        KindOutsideWorkingHours,
			Description: fmt.Sprintf("Professional does not work on %s", local.Weekday()),
			Severity:    SeverityError,
		}}, nil
	}

	window, err := schedule.WindowOn(local)
	if err != nil {
		return nil, err
	}
	if !window.Contains(localSlot) {
		return []Conflict{{
			Kind:        KindOutsideWorkingHours,
			TimeRange:   &window,
			Description: fmt.Sprintf("Outside working hours (%s-%s)", schedule.Start, schedule.End),
			Severity:    SeverityError,
		}}, nil
	}

	breakRange, err := schedule.BreakOn(local)
	if err != nil {
		return nil, err
	}
	if breakRange != nil && breakRange.Overlaps(localSlot) {
		return []Conflict{{
			Kind:        KindOutsideWorkingHours,
			TimeRange:   breakRange,
			Description: fmt.Sprintf("Overlaps break time (%s-%s)", schedule.BreakStart, schedule.BreakEnd),
			Severity:    SeverityError,
		}}, nil
	}
	return nil, nil
}

func (c *ConflictChecker) checkResources(ctx context.Context, candidate booking.Candidate, slot booking.TimeRange, policy Policy) ([]Conflict, error) {
	resourceIDs := candidate.DistinctResourceIDs()
	existing, err := c.repo.FindOverlappingByResources(ctx, candidate.TenantID, resourceIDs, slot, candidate.ExcludeID)
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for _, b := range activeOverlapping(existing, slot, candidate.ExcludeID) {
		for _, resourceID := range resourceIDs {
			if !b.UsesResource(resourceID) {
				continue
			}
			conflicts = append(conflicts, bookingConflict(
				KindResourceUnavailable, SeverityError, b, &resourceID,
				fmt.Sprintf("Resource %s is already in use from %s", resourceID, formatRange(b.TimeRange, policy)),
			))
		}
	}
	return conflicts, nil
}

// checkAdvanceWindow needs no store access; the two outcomes are exclusive.
func checkAdvanceWindow(now, start time.Time, policy Policy) []Conflict {
	until := start.Sub(now)
	switch {
	case until < policy.MinAdvance:
		return []Conflict{{
			Kind:        KindInsufficientAdvanceNotice,
			Description: fmt.Sprintf("Insufficient advance notice: bookings require at least %d minutes", int(policy.MinAdvance.Minutes())),
			Severity:    SeverityError,
		}}
	case policy.MaxAdvance > 0 && until > policy.MaxAdvance:
		return []Conflict{{
			Kind:        KindExceedsMaxAdvance,
			Description: fmt.Sprintf("Exceeds maximum advance booking of %d minutes", int(policy.MaxAdvance.Minutes())),
			Severity:    SeverityError,
		}}
	default:
		return nil
	}
}

func activeOverlapping(existing []booking.ExistingBooking, slot booking.TimeRange, excludeID *uuid.UUID) []booking.ExistingBooking {
	matches := make([]booking.ExistingBooking, 0, len(existing))
	for _, b := range existing {
		if !b.IsActive() || !b.TimeRange.Overlaps(slot) {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		matches = append(matches, b)
	}
	slices.SortStableFunc(matches, func(a, b booking.ExistingBooking) int {
		return a.TimeRange.Start().Compare(b.TimeRange.Start())
	})
	return matches
}

func bookingConflict(kind Kind, severity Severity, b booking.ExistingBooking, resourceID *uuid.UUID, desc string) Conflict {
	id := b.ID
	tr := b.TimeRange
	var rid *uuid.UUID
	if resourceID != nil {
		r := *resourceID
		rid = &r
	}
	return Conflict{
		Kind:        kind,
		BookingID:   &id,
		ResourceID:  rid,
		TimeRange:   &tr,
		Description: desc,
		Severity:    severity,
	}
}

func formatRange(tr booking.TimeRange, policy Policy) string {
	start := policy.locate(tr.Start())
	end := policy.locate(tr.End())
	if start.YearDay() == end.YearDay() && start.Year() == end.Year() {
		return start.Format(displayLayout) + " to " + end.Format("15:04")
	}
	return start.Format(displayLayout) + " to " + end.Format(displayLayout)
}
