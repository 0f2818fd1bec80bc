package repositories

import (
	"context"
	"errors"
	"time"

	"lendshare/internal/core/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection names in the shared_resources database
const (
	usersCollection = "users"
	itemsCollection = "items"
	loansCollection = "loans"
)

// NewMongoStore creates the document-store backend on top of an
// established database handle.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:   &mongoUserRepository{coll: db.Collection(usersCollection)},
		Items:   &mongoItemRepository{coll: db.Collection(itemsCollection)},
		Loans:   &mongoLoanRepository{coll: db.Collection(loansCollection)},
		Backend: "mongo",
	}
}

// userDoc is the BSON shape of a user document
type userDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Points    int           `bson:"points"`
	CreatedAt time.Time     `bson:"created_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Points:    d.Points,
		CreatedAt: d.CreatedAt,
	}
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		Name:      user.Name,
		Email:     user.Email,
		Points:    user.Points,
		CreatedAt: user.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	user.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toDomain()
	}
	return users, nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid object id, so it cannot reference any document
		return nil, nil
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *mongoUserRepository) IncrementPoints(ctx context.Context, id string, delta int) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"points": delta}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// itemDoc is the BSON shape of an item document
type itemDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	OwnerID     string        `bson:"owner_id"`
	Available   bool          `bson:"available"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func (d *itemDoc) toDomain() *domain.Item {
	return &domain.Item{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		OwnerID:     d.OwnerID,
		Available:   d.Available,
		CreatedAt:   d.CreatedAt,
	}
}

type mongoItemRepository struct {
	coll *mongo.Collection
}

func (r *mongoItemRepository) Create(ctx context.Context, item *domain.Item) error {
	doc := itemDoc{
		Name:        item.Name,
		Description: item.Description,
		OwnerID:     item.OwnerID,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	item.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

func (r *mongoItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*domain.Item, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}
	return items, nil
}

func (r *mongoItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc itemDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *mongoItemRepository) SetAvailability(ctx context.Context, id string, available bool) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"available": available}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// loanDoc is the BSON shape of a loan document
type loanDoc struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	ItemID     string        `bson:"item_id"`
	BorrowerID string        `bson:"borrower_id"`
	BorrowedAt time.Time     `bson:"borrowed_at"`
}

type mongoLoanRepository struct {
	coll *mongo.Collection
}

func (r *mongoLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	doc := loanDoc{
		ItemID:     loan.ItemID,
		BorrowerID: loan.BorrowerID,
		BorrowedAt: loan.BorrowedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	loan.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

func (r *mongoLoanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []loanDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	loans := make([]*domain.Loan, len(docs))
	for i := range docs {
		loans[i] = &domain.Loan{
			ID:         docs[i].ID.Hex(),
			ItemID:     docs[i].ItemID,
			BorrowerID: docs[i].BorrowerID,
			BorrowedAt: docs[i].BorrowedAt,
		}
	}
	return loans, nil
}
