package mysql

import (
	"context"

	"gorm.io/gorm"

	appDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Applications: &ApplicationRepository{db: tx},
			Decisions:    &DecisionRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *appDomain.LoanApplication) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Applications: &ApplicationRepository{db: tx},
			Decisions:    &DecisionRepository{db: tx},
		}
		// lock the application row up-front to prevent racing reviewers
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
