package mongodb

import (
	"context"
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

// userRepository implements repository.UserRepository on MongoDB.
// Users have no soft-delete: every delete is physical.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.CollectionUsers),
	}
}

// List retrieves all users.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, bson.M{})
}

// FindByID retrieves a single user by their store id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"correo": email})
}

// FindOffersByCity retrieves the users who opted into offer mail and live in
// the given city.
func (repo *userRepository) FindOffersByCity(ctx context.Context, city string) ([]*entity.User, error) {
	return repo.findMany(ctx, bson.M{"ciudad": city, "ofertas": true})
}

// Create persists a new user and fills in its generated id and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := model.FromUserDomain(user)
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// Update applies an overwrite-patch to the user with the given email.
func (repo *userRepository) Update(ctx context.Context, email string, patch *repository.UserPatch) (*entity.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["nombre"] = *patch.Name
	}
	if patch.Age != nil {
		set["edad"] = *patch.Age
	}
	if patch.City != nil {
		set["ciudad"] = *patch.City
	}
	if patch.Interests != nil {
		set["intereses"] = patch.Interests
	}
	if patch.Offers != nil {
		set["ofertas"] = *patch.Offers
	}

	var doc model.UserModel
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"correo": email},
		bson.M{"$set": set},
		returnUpdated(),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return model.ToUserDomain(&doc), nil
}

// Delete removes the user physically and returns the removed document.
func (repo *userRepository) Delete(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserModel
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"correo": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	return model.ToUserDomain(&doc), nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc model.UserModel
	err := repo.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return model.ToUserDomain(&doc), nil
}

func (repo *userRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	defer cursor.Close(ctx)

	var docs []*model.UserModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, model.ToUserDomain(doc))
	}

	return users, nil
}
