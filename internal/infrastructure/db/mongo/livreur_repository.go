package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/colisexpress/delivery-system/internal/core/domain"
)

const livreursCollection = "livreurs"

type LivreurRepository struct {
	coll *mongo.Collection
}

func NewLivreurRepository(db *mongo.Database) *LivreurRepository {
	return &LivreurRepository{coll: db.Collection(livreursCollection)}
}

func (r *LivreurRepository) Create(ctx context.Context, l *domain.Livreur) (*domain.Livreur, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if l.ID == "" {
		l.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrLivreurExists
		}
		return nil, fmt.Errorf("insert livreur: %w", err)
	}
	return l, nil
}

func (r *LivreurRepository) FindByID(ctx context.Context, id string) (*domain.Livreur, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Livreur
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLivreurNotFound
		}
		return nil, fmt.Errorf("find livreur: %w", err)
	}
	return &l, nil
}

func (r *LivreurRepository) List(ctx context.Context) ([]*domain.Livreur, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nom", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list livreurs: %w", err)
	}
	defer cur.Close(ctx)

	var livreurs []*domain.Livreur
	for cur.Next(ctx) {
		var l domain.Livreur
		if err := cur.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode livreur: %w", err)
		}
		livreurs = append(livreurs, &l)
	}
	return livreurs, cur.Err()
}

func (r *LivreurRepository) Update(ctx context.Context, l *domain.Livreur) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLivreurNotFound
	}
	return nil
}

func (r *LivreurRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLivreurNotFound
	}
	return nil
}
