package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

const blogsCollection = "blogs"

// BlogRepository persists blog entries in the blogs collection.
type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type blogDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author,omitempty"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
	User   primitive.ObjectID `bson:"user"`
}

func (d blogDoc) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
		UserID: d.User.Hex(),
	}
}

func (r *BlogRepository) Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	owner, err := primitive.ObjectIDFromHex(blog.UserID)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := blogDoc{
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
		User:   owner,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []blogDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	blogs := make([]*domain.Blog, 0, len(docs))
	for _, d := range docs {
		blogs = append(blogs, d.toDomain())
	}
	return blogs, nil
}

// UpdateLikes sets the likes counter and returns the updated document.
// Concurrent updates to the same entry are last-write-wins.
func (r *BlogRepository) UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blogDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"likes": likes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update likes: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}
