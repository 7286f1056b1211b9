package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/frontdesk-org/frontdesk/store"
)

const (
	CollectionName = "forms"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(CollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("FormStatus"),
		},
		{
			Keys: bson.D{
				{Key: "appointmentDate", Value: 1},
				{Key: "appointmentTime", Value: 1},
			},
			Options: options.Index().
				SetName("FormAppointmentSlot"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Form, error) {
	form := &Form{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(form)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return form, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Form, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "createdTime", Value: 1}})

	selector := bson.M{}
	if filter != nil {
		if filter.Status != nil {
			selector["status"] = *filter.Status
		}
		if filter.DateFrom != nil || filter.DateTo != nil {
			dates := bson.M{}
			if filter.DateFrom != nil {
				dates["$gte"] = *filter.DateFrom
			}
			if filter.DateTo != nil {
				dates["$lte"] = *filter.DateTo
			}
			selector["appointmentDate"] = dates
		}
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing forms: %w", err)
	}

	forms := make([]*Form, 0)
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("error decoding forms list: %w", err)
	}

	return forms, nil
}

func (r *repository) Create(ctx context.Context, form Form) (*Form, error) {
	if form.Id == "" {
		form.Id = uuid.NewString()
	}
	if form.Status == "" {
		form.Status = StatusDraft
	}
	now := time.Now()
	form.CreatedTime = now
	form.UpdatedTime = now

	if _, err := r.collection.InsertOne(ctx, form); err != nil {
		return nil, fmt.Errorf("error creating form: %w", err)
	}

	return r.Get(ctx, form.Id)
}

func (r *repository) Update(ctx context.Context, id string, form Form) (*Form, error) {
	update := bson.M{
		"$set": bson.M{
			"name":            form.Name,
			"email":           form.Email,
			"phone":           form.Phone,
			"birthDate":       form.BirthDate,
			"appointmentDate": form.AppointmentDate,
			"appointmentTime": form.AppointmentTime,
			"updatedTime":     time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("error updating form: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return r.Get(ctx, id)
}

func (r *repository) Submit(ctx context.Context, id string) (*Form, error) {
	return r.transition(ctx, id, StatusDraft, StatusSubmitted)
}

func (r *repository) Process(ctx context.Context, id string) (*Form, error) {
	return r.transition(ctx, id, StatusSubmitted, StatusProcessed)
}

func (r *repository) transition(ctx context.Context, id, from, to string) (*Form, error) {
	now := time.Now()
	set := bson.M{
		"status":      to,
		"updatedTime": now,
	}
	if to == StatusSubmitted {
		set["submittedTime"] = now
	}

	selector := bson.M{
		"_id":    id,
		"status": from,
	}

	res, err := r.collection.UpdateOne(ctx, selector, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("error transitioning form to %s: %w", to, err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing form from one in the wrong status
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	return r.Get(ctx, id)
}

func (r *repository) Remove(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
