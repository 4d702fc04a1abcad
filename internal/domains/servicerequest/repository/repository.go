package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/postgres"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gRepo "github.com/singhtechie24/Indiana-Hotels-Final/shared/repository"
)

type ServiceRequest interface {
	Insert(ctx context.Context, model model.ServiceRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ServiceRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
