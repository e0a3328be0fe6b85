package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// CollectionsUseCase runs the reconcile-by-id algorithm for every child
// collection of a profile. Each replace executes inside one unit of work:
// the submitted batch is validated up front and either every insert, update
// and delete lands, or none of them do.
type CollectionsUseCase struct {
	profileRepo profile.Repository
	txManager   profile.TxManager
	events      service.EventPublisher
	logger      logger.Logger
}

func NewCollectionsUseCase(
	profiles profile.Repository,
	tx profile.TxManager,
	events service.EventPublisher,
	log logger.Logger,
) *CollectionsUseCase {
	return &CollectionsUseCase{
		profileRepo: profiles,
		txManager:   tx,
		events:      events,
		logger:      log,
	}
}

func (uc *CollectionsUseCase) ReplaceWorkExperiences(ctx context.Context, userID uuid.UUID, patches []*WorkExperiencePatch) error {
	return replaceCollection(ctx, uc, userID, "work_experience", patches, profile.UnitOfWork.WorkExperiences)
}

func (uc *CollectionsUseCase) ReplaceEducations(ctx context.Context, userID uuid.UUID, patches []*EducationPatch) error {
	return replaceCollection(ctx, uc, userID, "education", patches, profile.UnitOfWork.Educations)
}

func (uc *CollectionsUseCase) ReplaceLanguages(ctx context.Context, userID uuid.UUID, patches []*LanguagePatch) error {
	return replaceCollection(ctx, uc, userID, "languages", patches, profile.UnitOfWork.Languages)
}

func (uc *CollectionsUseCase) ReplaceCertificates(ctx context.Context, userID uuid.UUID, patches []*CertificatePatch) error {
	return replaceCollection(ctx, uc, userID, "certificates", patches, profile.UnitOfWork.Certificates)
}

func replaceCollection[R profile.Record, P Patch[R]](
	ctx context.Context,
	uc *CollectionsUseCase,
	userID uuid.UUID,
	collection string,
	patches []P,
	stores func(profile.UnitOfWork) profile.Collection[R],
) error {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin transaction", err)
	}
	// Rollback is a no-op once Commit succeeded.
	defer uow.Rollback(ctx)

	if err := Reconcile(ctx, stores(uow), p.ID, patches); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit collection update", err)
	}

	uc.publish(ctx, userID, p.ID, collection)
	return nil
}

func (uc *CollectionsUseCase) publish(ctx context.Context, userID, profileID uuid.UUID, collection string) {
	if uc.events == nil {
		return
	}
	evt := service.ProfileEvent{
		Type:       "profile.collection.replaced",
		UserID:     userID,
		ProfileID:  profileID,
		Collection: collection,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.events.PublishProfileEvent(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish profile event",
			zap.String("collection", collection), zap.Error(err))
	}
}
