package links

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	CollectionName = "appointmentLinks"
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

	// Serializes the clear-then-set sequence so two confirmations racing on
	// the same form cannot both end up owning it.
	writeMu sync.Mutex
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "formId", Value: 1},
			},
			Options: options.Index().
				SetName("LinkFormId"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, appointmentId string) (*Link, error) {
	link := &Link{}
	err := r.collection.FindOne(ctx, bson.M{"_id": appointmentId}).Decode(link)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return link, nil
}

func (r *repository) GetAll(ctx context.Context) (map[string]string, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(list))
	for _, link := range list {
		result[link.AppointmentId] = link.FormId
	}
	return result, nil
}

func (r *repository) List(ctx context.Context) ([]*Link, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing links: %w", err)
	}

	list := make([]*Link, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding links list: %w", err)
	}

	return list, nil
}

func (r *repository) Set(ctx context.Context, appointmentId, formId string) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	// Clear any other appointment pointing at this form, then upsert.
	selector := bson.M{
		"formId": formId,
		"_id":    bson.M{"$ne": appointmentId},
	}
	if _, err := r.collection.DeleteMany(ctx, selector); err != nil {
		return fmt.Errorf("error clearing previous link owner: %w", err)
	}

	link := Link{
		AppointmentId: appointmentId,
		FormId:        formId,
		UpdatedTime:   time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": appointmentId}, link, opts); err != nil {
		return fmt.Errorf("error setting link: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, appointmentId string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": appointmentId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
