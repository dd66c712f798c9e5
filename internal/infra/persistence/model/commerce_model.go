// Package model contains the persistence representations of the domain
// entities, tagged for the document store.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cityhub/internal/domain/entity"
)

// CommerceModel mirrors a document of the 'comercios' collection. CIF and
// correo carry partial unique indexes scoped to non-deleted documents.
type CommerceModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nombre"`
	CIF       string             `bson:"CIF"`
	Address   string             `bson:"direccion"`
	Email     string             `bson:"correo"`
	Password  string             `bson:"password"`
	Phone     string             `bson:"telefono"`
	City      string             `bson:"ciudad,omitempty"`
	Activity  []string           `bson:"actividad,omitempty"`
	Title     string             `bson:"titulo,omitempty"`
	Summary   string             `bson:"resumen,omitempty"`
	Texts     []string           `bson:"textos,omitempty"`
	File      *CommerceFileModel `bson:"file,omitempty"`
	Scoring   []float64          `bson:"scoring,omitempty"`
	Reviews   []string           `bson:"review,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Deleted   bool               `bson:"deleted"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty"`
}

// CommerceFileModel is the denormalized photo reference embedded in a commerce.
type CommerceFileModel struct {
	Filename string `bson:"filename"`
	URL      string `bson:"url"`
}

// CollectionComercios is the collection name backing CommerceModel.
const CollectionComercios = "comercios"

// ToCommerceDomain converts a persistence model to a domain entity.
func ToCommerceDomain(data *CommerceModel) *entity.Commerce {
	if data == nil {
		return nil
	}

	var file *entity.CommerceFile
	if data.File != nil {
		file = &entity.CommerceFile{
			Filename: data.File.Filename,
			URL:      data.File.URL,
		}
	}

	return &entity.Commerce{
		ID:        data.ID.Hex(),
		Name:      data.Name,
		CIF:       data.CIF,
		Address:   data.Address,
		Email:     data.Email,
		Password:  data.Password,
		Phone:     data.Phone,
		City:      data.City,
		Activity:  data.Activity,
		Title:     data.Title,
		Summary:   data.Summary,
		Texts:     data.Texts,
		File:      file,
		Scoring:   data.Scoring,
		Reviews:   data.Reviews,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Deleted:   data.Deleted,
		DeletedAt: data.DeletedAt,
	}
}

// FromCommerceDomain converts a domain entity to a persistence model.
// A zero or malformed entity id maps to the zero ObjectID so the store can
// generate one on insert.
func FromCommerceDomain(data *entity.Commerce) *CommerceModel {
	if data == nil {
		return nil
	}

	id, _ := primitive.ObjectIDFromHex(data.ID)

	var file *CommerceFileModel
	if data.File != nil {
		file = &CommerceFileModel{
			Filename: data.File.Filename,
			URL:      data.File.URL,
		}
	}

	return &CommerceModel{
		ID:        id,
		Name:      data.Name,
		CIF:       data.CIF,
		Address:   data.Address,
		Email:     data.Email,
		Password:  data.Password,
		Phone:     data.Phone,
		City:      data.City,
		Activity:  data.Activity,
		Title:     data.Title,
		Summary:   data.Summary,
		Texts:     data.Texts,
		File:      file,
		Scoring:   data.Scoring,
		Reviews:   data.Reviews,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Deleted:   data.Deleted,
		DeletedAt: data.DeletedAt,
	}
}
