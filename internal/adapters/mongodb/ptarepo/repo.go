package ptarepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
	"github.com/leopoldovcfonseca/ptashelf/internal/platform/pagetoken"
	"github.com/leopoldovcfonseca/ptashelf/internal/ports/out/ptarepo"
)

// Repo stores one document per pta. IDs are the hex form of the
// driver-generated ObjectID, which orders by creation time.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

type ptaDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	domain.PtaFields `bson:",inline"`
}

func (d ptaDocument) toDomain() domain.Pta {
	return domain.Pta{ID: domain.PtaID(d.ID.Hex()), PtaFields: d.PtaFields}
}

func (r *Repo) List(ctx context.Context, limit int, pageToken string) (ptarepo.Page, error) {
	if limit <= 0 {
		return ptarepo.Page{}, fmt.Errorf("limit must be greater than zero")
	}
	native, err := pagetoken.Decode(pageToken)
	if err != nil {
		return ptarepo.Page{}, fmt.Errorf("%w: %v", ptarepo.ErrInvalidPageToken, err)
	}
	filter := bson.M{}
	if native != "" {
		after, err := primitive.ObjectIDFromHex(native)
		if err != nil {
			return ptarepo.Page{}, fmt.Errorf("%w: bad cursor id %q", ptarepo.ErrInvalidPageToken, native)
		}
		filter["_id"] = bson.M{"$gt": after}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(int64(limit + 1))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return ptarepo.Page{}, fmt.Errorf("list ptas: %w", err)
	}
	defer cur.Close(ctx)

	page := ptarepo.Page{Ptas: make([]domain.Pta, 0, limit)}
	for cur.Next(ctx) {
		var doc ptaDocument
		if err := cur.Decode(&doc); err != nil {
			return ptarepo.Page{}, fmt.Errorf("list ptas: decode: %w", err)
		}
		page.Ptas = append(page.Ptas, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return ptarepo.Page{}, fmt.Errorf("list ptas: cursor: %w", err)
	}
	if len(page.Ptas) > limit {
		page.Ptas = page.Ptas[:limit]
		page.NextPageToken = pagetoken.Encode(string(page.Ptas[limit-1].ID))
	}
	return page, nil
}

func (r *Repo) Create(ctx context.Context, fields domain.PtaFields) (domain.Pta, error) {
	res, err := r.coll.InsertOne(ctx, ptaDocument{PtaFields: fields})
	if err != nil {
		return domain.Pta{}, fmt.Errorf("create pta: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Pta{}, fmt.Errorf("create pta: unexpected inserted id %T", res.InsertedID)
	}
	return r.Get(ctx, domain.PtaID(oid.Hex()))
}

func (r *Repo) Get(ctx context.Context, id domain.PtaID) (domain.Pta, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	var doc ptaDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Pta{}, ptarepo.ErrNotFound
		}
		return domain.Pta{}, fmt.Errorf("get pta: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repo) Update(ctx context.Context, id domain.PtaID, patch domain.PtaPatch) (domain.Pta, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.Pta{}, ptarepo.ErrNotFound
	}
	set := bson.M{}
	for _, fd := range domain.Fields {
		if v, ok := patch[fd.Key]; ok {
			set[fd.Key] = v
		}
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc ptaDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Pta{}, ptarepo.ErrNotFound
		}
		return domain.Pta{}, fmt.Errorf("update pta: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PtaID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete pta: %w", err)
	}
	return nil
}

var _ ptarepo.Repository = (*Repo)(nil)
