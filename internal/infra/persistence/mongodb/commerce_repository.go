package mongodb

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cityhub/internal/domain/entity"
	"cityhub/internal/domain/repository"
	"cityhub/internal/infra/persistence/model"
)

// commerceRepository implements repository.CommerceRepository on MongoDB.
type commerceRepository struct {
	coll *mongo.Collection
}

// NewCommerceRepository is the constructor for commerceRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCommerceRepository(db *mongo.Database) repository.CommerceRepository {
	return &commerceRepository{
		coll: db.Collection(model.CollectionComercios),
	}
}

// notDeleted is the default query scope: soft-deleted documents are invisible.
func notDeleted() bson.M {
	return bson.M{"deleted": bson.M{"$ne": true}}
}

// scoped merges a filter into the default scope.
func scoped(filter bson.M) bson.M {
	merged := notDeleted()
	for k, v := range filter {
		merged[k] = v
	}

	return merged
}

// returnUpdated makes findOneAndUpdate return the post-update document.
func returnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// List retrieves all non-deleted commerces, optionally sorted by CIF ascending.
func (repo *commerceRepository) List(ctx context.Context, orderByCIF bool) ([]*entity.Commerce, error) {
	opts := options.Find()
	if orderByCIF {
		opts.SetSort(bson.D{{Key: "CIF", Value: 1}})
	}

	cursor, err := repo.coll.Find(ctx, notDeleted(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list commerces")
	}
	defer cursor.Close(ctx)

	var docs []*model.CommerceModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode commerces")
	}

	commerces := make([]*entity.Commerce, 0, len(docs))
	for _, doc := range docs {
		commerces = append(commerces, model.ToCommerceDomain(doc))
	}

	return commerces, nil
}

// FindByID retrieves a single commerce by its store id.
func (repo *commerceRepository) FindByID(ctx context.Context, id string) (*entity.Commerce, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrCommerceNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

// FindByCIF retrieves a single commerce by its business key.
func (repo *commerceRepository) FindByCIF(ctx context.Context, cif string) (*entity.Commerce, error) {
	return repo.findOne(ctx, bson.M{"CIF": cif})
}

// FindByEmail retrieves a single commerce by its contact email.
func (repo *commerceRepository) FindByEmail(ctx context.Context, email string) (*entity.Commerce, error) {
	return repo.findOne(ctx, bson.M{"correo": email})
}

// FindByActivity retrieves commerces whose activity list contains the given
// substring, case-insensitively.
func (repo *commerceRepository) FindByActivity(ctx context.Context, activity string) ([]*entity.Commerce, error) {
	filter := bson.M{"actividad": primitive.Regex{
		Pattern: regexp.QuoteMeta(activity),
		Options: "i",
	}}

	return repo.findMany(ctx, filter)
}

// FindByCity retrieves commerces registered in the given city (exact match).
func (repo *commerceRepository) FindByCity(ctx context.Context, city string) ([]*entity.Commerce, error) {
	return repo.findMany(ctx, bson.M{"ciudad": city})
}

// Create persists a new commerce and fills in its generated id and timestamps.
// The unique-index backstop turns a lost pre-check race into a conflict error.
func (repo *commerceRepository) Create(ctx context.Context, commerce *entity.Commerce) error {
	doc := model.FromCommerceDomain(commerce)
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Deleted = false

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.classifyDuplicate(ctx, commerce)
		}

		return errors.Wrap(err, "failed to create commerce")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		commerce.ID = oid.Hex()
	}
	commerce.CreatedAt = doc.CreatedAt
	commerce.UpdatedAt = doc.UpdatedAt

	return nil
}

// Update applies an overwrite-patch to the commerce with the given CIF.
func (repo *commerceRepository) Update(ctx context.Context, cif string, patch *repository.CommercePatch) (*entity.Commerce, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["nombre"] = *patch.Name
	}
	if patch.Address != nil {
		set["direccion"] = *patch.Address
	}
	if patch.Email != nil {
		set["correo"] = *patch.Email
	}
	if patch.Phone != nil {
		set["telefono"] = *patch.Phone
	}
	if patch.City != nil {
		set["ciudad"] = *patch.City
	}
	if patch.Activity != nil {
		set["actividad"] = patch.Activity
	}

	return repo.updateOne(ctx, cif, bson.M{"$set": set})
}

// AppendInfo overwrites titulo/resumen and pushes the new text onto the list
// without clobbering sibling fields.
func (repo *commerceRepository) AppendInfo(ctx context.Context, cif string, info *repository.CommerceInfo) (*entity.Commerce, error) {
	set := bson.M{"updatedAt": time.Now()}
	if info.Title != nil {
		set["titulo"] = *info.Title
	}
	if info.Summary != nil {
		set["resumen"] = *info.Summary
	}

	update := bson.M{"$set": set}
	if info.Text != nil {
		update["$push"] = bson.M{"textos": *info.Text}
	}

	return repo.updateOne(ctx, cif, update)
}

// AppendReview pushes a scoring and a review text onto the commerce's lists.
func (repo *commerceRepository) AppendReview(ctx context.Context, cif string, scoring float64, review string) (*entity.Commerce, error) {
	update := bson.M{
		"$set": bson.M{"updatedAt": time.Now()},
		"$push": bson.M{
			"scoring": scoring,
			"review":  review,
		},
	}

	return repo.updateOne(ctx, cif, update)
}

// SetFile stores the denormalized photo reference on the commerce.
func (repo *commerceRepository) SetFile(ctx context.Context, cif string, file *entity.CommerceFile) (*entity.Commerce, error) {
	update := bson.M{"$set": bson.M{
		"updatedAt": time.Now(),
		"file": model.CommerceFileModel{
			Filename: file.Filename,
			URL:      file.URL,
		},
	}}

	return repo.updateOne(ctx, cif, update)
}

// SoftDelete marks the commerce deleted; the document persists physically and
// leaves the default scope.
func (repo *commerceRepository) SoftDelete(ctx context.Context, cif string) (*entity.Commerce, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"deleted":   true,
		"deletedAt": now,
		"updatedAt": now,
	}}

	return repo.updateOne(ctx, cif, update)
}

// HardDelete removes the commerce physically, whether soft-deleted or not.
func (repo *commerceRepository) HardDelete(ctx context.Context, cif string) (*entity.Commerce, error) {
	var doc model.CommerceModel
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"CIF": cif}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommerceNotFound
		}

		return nil, errors.Wrap(err, "failed to hard-delete commerce")
	}

	return model.ToCommerceDomain(&doc), nil
}

func (repo *commerceRepository) findOne(ctx context.Context, filter bson.M) (*entity.Commerce, error) {
	var doc model.CommerceModel
	err := repo.coll.FindOne(ctx, scoped(filter)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommerceNotFound
		}

		return nil, errors.Wrap(err, "failed to find commerce")
	}

	return model.ToCommerceDomain(&doc), nil
}

func (repo *commerceRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.Commerce, error) {
	cursor, err := repo.coll.Find(ctx, scoped(filter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find commerces")
	}
	defer cursor.Close(ctx)

	var docs []*model.CommerceModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode commerces")
	}

	commerces := make([]*entity.Commerce, 0, len(docs))
	for _, doc := range docs {
		commerces = append(commerces, model.ToCommerceDomain(doc))
	}

	return commerces, nil
}

func (repo *commerceRepository) updateOne(ctx context.Context, cif string, update bson.M) (*entity.Commerce, error) {
	var doc model.CommerceModel
	err := repo.coll.FindOneAndUpdate(ctx, scoped(bson.M{"CIF": cif}), update, returnUpdated()).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommerceNotFound
		}

		return nil, errors.Wrap(err, "failed to update commerce")
	}

	return model.ToCommerceDomain(&doc), nil
}

// classifyDuplicate names the colliding field after a unique-index violation.
func (repo *commerceRepository) classifyDuplicate(ctx context.Context, commerce *entity.Commerce) error {
	if _, err := repo.findOne(ctx, bson.M{"CIF": commerce.CIF}); err == nil {
		return repository.ErrCommerceCIFTaken
	}

	return repository.ErrCommerceEmailTaken
}
