package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cityhub/internal/domain/entity"
)

// UserModel mirrors a document of the 'users' collection. correo carries a
// unique index; users are deleted physically, so no deleted marker exists.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nombre"`
	Email     string             `bson:"correo"`
	Password  string             `bson:"password"`
	Age       int                `bson:"edad"`
	City      string             `bson:"ciudad"`
	Interests []string           `bson:"intereses,omitempty"`
	Offers    bool               `bson:"ofertas"`
	Role      string             `bson:"rol"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CollectionUsers is the collection name backing UserModel.
const CollectionUsers = "users"

// ToUserDomain converts a persistence model to a domain entity.
func ToUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID.Hex(),
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Age:       data.Age,
		City:      data.City,
		Interests: data.Interests,
		Offers:    data.Offers,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromUserDomain converts a domain entity to a persistence model.
func FromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	id, _ := primitive.ObjectIDFromHex(data.ID)

	return &UserModel{
		ID:        id,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Age:       data.Age,
		City:      data.City,
		Interests: data.Interests,
		Offers:    data.Offers,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
