package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
)

// Patch describes one submitted item of a replacement collection. A patch
// may carry the id of an existing record (update in place) or no id at all
// (create). Fields absent from the patch leave the stored value unchanged.
type Patch[R profile.Record] interface {
	// SubmittedID returns the client-supplied record id, if any.
	SubmittedID() (int64, bool)
	// Validate checks required fields and parses date strings. It must be
	// called before Apply and must not mutate any stored record.
	Validate() error
	// NewRecord builds an empty record owned by the profile; Apply fills it.
	NewRecord(profileID uuid.UUID) R
	// Apply copies every field present in the patch onto the record.
	Apply(r *R)
}

// Reconcile makes the persisted collection equal, by content, to the
// submitted sequence: ids found in the current set are updated in place,
// items without a known id become new records, and every current record not
// referenced by the submission is deleted. The entire batch is validated
// before the first mutation; callers run it inside a unit of work so a
// mid-batch failure leaves prior state intact.
func Reconcile[R profile.Record, P Patch[R]](ctx context.Context, col profile.Collection[R], profileID uuid.UUID, submitted []P) error {
	for i, p := range submitted {
		if err := p.Validate(); err != nil {
			return apperror.NewInvalidInput(fmt.Sprintf("item %d is invalid", i), err)
		}
	}

	current, err := col.ListByProfile(ctx, profileID)
	if err != nil {
		return err
	}

	existing := make(map[int64]R, len(current))
	for _, r := range current {
		existing[r.RecordID()] = r
	}

	kept := make(map[int64]struct{}, len(submitted))
	for _, p := range submitted {
		if id, ok := p.SubmittedID(); ok {
			if r, found := existing[id]; found {
				p.Apply(&r)
				if err := col.Update(ctx, &r); err != nil {
					return err
				}
				kept[id] = struct{}{}
				continue
			}
		}
		// Unknown or missing id: the item is a create.
		r := p.NewRecord(profileID)
		p.Apply(&r)
		if err := col.Insert(ctx, &r); err != nil {
			return err
		}
		kept[r.RecordID()] = struct{}{}
	}

	for _, r := range current {
		if _, ok := kept[r.RecordID()]; !ok {
			if err := col.Delete(ctx, r.RecordID()); err != nil {
				return err
			}
		}
	}
	return nil
}
