package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/OSU-CS493-Sp18/auth/internal/application/ports"
	"github.com/OSU-CS493-Sp18/auth/internal/domain"
	domerrors "github.com/OSU-CS493-Sp18/auth/internal/domain/errors"
)

const usersCollection = "users"

// userDocument is the stored shape of a user. The password field is omitted
// from reads unless the credential is explicitly requested.
type userDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"userID"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password,omitempty"`
	Lodgings  []string      `bson:"lodgings"`
	CreatedAt time.Time     `bson:"created_at"`
}

// UserDirectory implements ports.UserDirectory on the document store.
type UserDirectory struct {
	users *mongo.Collection
}

func NewUserDirectory(db *mongo.Database) *UserDirectory {
	return &UserDirectory{users: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique index on userID. Uniqueness of the
// application identifier is enforced here, not by the store's _id.
func (d *UserDirectory) EnsureIndexes(ctx context.Context) error {
	_, err := d.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create userID index: %w", err)
	}
	return nil
}

func (d *UserDirectory) Create(ctx context.Context, user *domain.User) (string, error) {
	doc := userDocument{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Lodgings:  []string{},
		CreatedAt: user.CreatedAt,
	}
	result, err := d.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domerrors.ErrDuplicateUser
		}
		return "", fmt.Errorf("%w: insert user: %v", domerrors.ErrStorageUnavailable, err)
	}
	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", domerrors.ErrStorageUnavailable, result.InsertedID)
	}
	return oid.Hex(), nil
}

func (d *UserDirectory) FindByID(ctx context.Context, userID string, includeCredential bool) (*domain.User, error) {
	opts := options.FindOne()
	if !includeCredential {
		// Excluded from the projection so the field never reaches this
		// process, rather than fetched and blanked.
		opts = opts.SetProjection(bson.D{{Key: "password", Value: 0}})
	}
	var doc userDocument
	err := d.users.FindOne(ctx, bson.D{{Key: "userID", Value: userID}}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find user: %v", domerrors.ErrStorageUnavailable, err)
	}
	return docToDomain(doc), nil
}

// AppendOwnedLodging adds lodgingID to the user's lodging list. $addToSet
// gives the append set semantics: a retried or concurrent link of the same
// lodging cannot duplicate the entry.
func (d *UserDirectory) AppendOwnedLodging(ctx context.Context, userID, lodgingID string) error {
	result, err := d.users.UpdateOne(ctx,
		bson.D{{Key: "userID", Value: userID}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "lodgings", Value: lodgingID}}}},
	)
	if err != nil {
		return fmt.Errorf("%w: append lodging: %v", domerrors.ErrStorageUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return domerrors.ErrUserNotFound
	}
	return nil
}

func docToDomain(doc userDocument) *domain.User {
	lodgings := doc.Lodgings
	if lodgings == nil {
		lodgings = []string{}
	}
	return &domain.User{
		StorageID:    doc.ID.Hex(),
		UserID:       doc.UserID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Lodgings:     lodgings,
		CreatedAt:    doc.CreatedAt,
	}
}

// Ensure UserDirectory implements ports.UserDirectory.
var _ ports.UserDirectory = (*UserDirectory)(nil)
