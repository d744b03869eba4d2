package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

const colisCollection = "colis"

type ColisRepository struct {
	col *mongo.Collection
}

func NewColisRepository(db *mongo.Database) *ColisRepository {
	return &ColisRepository{col: db.Collection(colisCollection)}
}

// Create inserts a new colis document. The identifier is assigned here so the
// aggregate round-trips with a plain string id.
func (r *ColisRepository) Create(ctx context.Context, c *domain.Colis) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// FindByID retrieves a colis by id. When clientID is non-empty, an additional
// filter by client_id is applied.
func (r *ColisRepository) FindByID(ctx context.Context, id string, clientID string) (*domain.Colis, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	var c domain.Colis
	err := r.col.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrColisNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByIdempotencyKey retrieves an existing colis that was created with the given key.
func (r *ColisRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Colis, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Colis
	err := r.col.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrColisNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns one page of colis matching filter plus the total count.
func (r *ColisRepository) List(ctx context.Context, filter ports.ListColisFilter) ([]*domain.Colis, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.LivreurID != "" {
		query["livreur_id"] = filter.LivreurID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"reference": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"destinataire.nom": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	created := bson.M{}
	if !filter.DateFrom.IsZero() {
		created["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		created["$lte"] = filter.DateTo
	}
	if len(created) > 0 {
		query["created_at"] = created
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*domain.Colis
	for cur.Next(ctx) {
		var c domain.Colis
		if err := cur.Decode(&c); err != nil {
			return nil, 0, err
		}
		items = append(items, &c)
	}
	return items, total, cur.Err()
}

// Update replaces the mutable fields of an existing colis.
func (r *ColisRepository) Update(ctx context.Context, c *domain.Colis) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"poids":        c.Poids,
		"description":  c.Description,
		"destination":  c.Destination,
		"priority":     c.Priority,
		"produits":     c.Produits,
		"destinataire": c.Destinataire,
		"updated_at":   c.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrColisNotFound
	}
	return nil
}

// UpdateStatus atomically applies a status change and appends a history entry.
func (r *ColisRepository) UpdateStatus(ctx context.Context, id string, status domain.ColisStatus, ts time.Time, commentaire string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	entry := domain.HistoriqueEntry{Status: status, Timestamp: ts, Commentaire: commentaire}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":  bson.M{"status": status, "updated_at": ts},
		"$push": bson.M{"historique_livraison": entry},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrColisNotFound
	}
	return nil
}

// AssignLivreur records the livreur responsible for the colis.
func (r *ColisRepository) AssignLivreur(ctx context.Context, colisID, livreurID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": colisID}, bson.M{"$set": bson.M{
		"livreur_id": livreurID,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrColisNotFound
	}
	return nil
}

func (r *ColisRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrColisNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the colis collection.
func (r *ColisRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "livreur_id", Value: 1}}},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
