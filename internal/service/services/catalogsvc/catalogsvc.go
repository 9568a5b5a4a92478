package catalogsvc

import (
	"context"

	"github.com/aays-store/backend/internal/dal/interfaces/icollectionrepo"
	"github.com/aays-store/backend/internal/dal/interfaces/iproductrepo"
	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/collection"
	"github.com/aays-store/backend/internal/service/models/product"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CatalogService manages products and collections, keeping the
// bidirectional references between them consistent.
type CatalogService struct {
	tx             transactor
	productRepo    iproductrepo.IProductRepository
	collectionRepo icollectionrepo.ICollectionRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithTransactor(tx transactor) option {
	return func(s *CatalogService) { s.tx = tx }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *CatalogService) { s.productRepo = repo }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithCollectionRepository(repo icollectionrepo.ICollectionRepository) option {
	return func(s *CatalogService) { s.collectionRepo = repo }
}

// CollectionDetails is a collection with its product references populated.
type CollectionDetails struct {
	Collection collection.Collection `json:"collection"`
	Products   []product.Product     `json:"products"`
}

// CreateCollection creates a collection with a unique title.
func (s *CatalogService) CreateCollection(ctx context.Context, title, description, image string) (*collection.Collection, error) {
	if title == "" || image == "" {
		return nil, errs.Validation("title and image are required")
	}

	_, err := s.collectionRepo.GetByTitle(ctx, title)
	if err == nil {
		return nil, errs.Validation("collection %q already exists", title)
	}
	if errs.KindOf(err) != errs.KindNotFound {
		return nil, err
	}

	created, err := s.collectionRepo.Insert(ctx, collection.Collection{
		Title:       title,
		Description: description,
		Image:       image,
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListCollections returns all collections with populated products.
func (s *CatalogService) ListCollections(ctx context.Context) ([]CollectionDetails, error) {
	collections, err := s.collectionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]CollectionDetails, 0, len(collections))
	for _, c := range collections {
		products, err := s.productRepo.ListByIDs(ctx, c.Products)
		if err != nil {
			return nil, err
		}
		details = append(details, CollectionDetails{Collection: c, Products: products})
	}

	return details, nil
}

// GetCollection retrieves one collection with populated products.
func (s *CatalogService) GetCollection(ctx context.Context, collectionID string) (*CollectionDetails, error) {
	id, err := parseID(collectionID, "collection")
	if err != nil {
		return nil, err
	}

	c, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByIDs(ctx, c.Products)
	if err != nil {
		return nil, err
	}

	return &CollectionDetails{Collection: *c, Products: products}, nil
}

// UpdateCollectionModel carries a collection update. When ProductID is set,
// the product is reassigned to exactly the listed collections, both sides
// updated together.
type UpdateCollectionModel struct {
	Title       string
	Description string
	Image       string
	ProductID   string
	Collections []string
}

// UpdateCollection updates a collection's fields and optionally reassigns a
// product across collections in one transaction.
func (s *CatalogService) UpdateCollection(ctx context.Context, collectionID string, model UpdateCollectionModel) (*collection.Collection, error) {
	id, err := parseID(collectionID, "collection")
	if err != nil {
		return nil, err
	}

	if model.Title == "" || model.Image == "" {
		return nil, errs.Validation("title and image are required")
	}

	var updated *collection.Collection
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if model.ProductID != "" {
			productID, err := parseID(model.ProductID, "product")
			if err != nil {
				return err
			}

			collectionIDs, err := parseIDs(model.Collections)
			if err != nil {
				return err
			}

			if err := s.collectionRepo.PullProduct(txCtx, productID); err != nil {
				return err
			}
			if err := s.collectionRepo.AddProduct(txCtx, collectionIDs, productID); err != nil {
				return err
			}
			if err := s.productRepo.SetCollections(txCtx, productID, collectionIDs); err != nil {
				return err
			}
		}

		c, err := s.collectionRepo.Update(txCtx, id, collection.Collection{
			Title:       model.Title,
			Description: model.Description,
			Image:       model.Image,
		})
		if err != nil {
			return err
		}
		updated = c

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCollection deletes the collection and removes its reference from
// every product in the same transaction.
func (s *CatalogService) DeleteCollection(ctx context.Context, collectionID string) error {
	id, err := parseID(collectionID, "collection")
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.collectionRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return s.productRepo.PullCollection(txCtx, id)
	})
}

// CollectionProducts returns the products referencing a collection.
func (s *CatalogService) CollectionProducts(ctx context.Context, collectionID string) ([]product.Product, error) {
	id, err := parseID(collectionID, "collection")
	if err != nil {
		return nil, err
	}

	return s.productRepo.ListByCollection(ctx, id)
}

// ProductDetails is a product with its collection references populated.
type ProductDetails struct {
	Product     product.Product         `json:"product"`
	Collections []collection.Collection `json:"collections"`
}

// CreateProductModel carries a new or updated product.
type CreateProductModel struct {
	Title       string
	Description string
	Media       []string
	Category    string
	SubCategory string
	Collections []string
	Tags        []string
	Sizes       []string
	Colors      []string
	Price       float64
	Expense     float64
}

func (m *CreateProductModel) toProduct() (product.Product, error) {
	collectionIDs, err := parseIDs(m.Collections)
	if err != nil {
		return product.Product{}, err
	}

	return product.Product{
		Title:       m.Title,
		Description: m.Description,
		Media:       m.Media,
		Category:    m.Category,
		SubCategory: m.SubCategory,
		Collections: collectionIDs,
		Tags:        m.Tags,
		Sizes:       m.Sizes,
		Colors:      m.Colors,
		Price:       m.Price,
		Expense:     m.Expense,
	}, nil
}

// CreateProduct creates a product and adds it to each referenced collection
// in one transaction.
func (s *CatalogService) CreateProduct(ctx context.Context, model CreateProductModel) (*product.Product, error) {
	if model.Title == "" {
		return nil, errs.Validation("title is required")
	}
	if model.SubCategory == "" {
		return nil, errs.Validation("subcategory is required")
	}

	p, err := model.toProduct()
	if err != nil {
		return nil, err
	}

	var created product.Product
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := s.productRepo.Insert(txCtx, p)
		if err != nil {
			return err
		}
		created = inserted

		return s.collectionRepo.AddProduct(txCtx, inserted.Collections, inserted.ID)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetProduct retrieves one product with populated collections.
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*ProductDetails, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collections := []collection.Collection{}
	for _, cid := range p.Collections {
		c, err := s.collectionRepo.GetByID(ctx, cid)
		if errs.KindOf(err) == errs.KindNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}

	return &ProductDetails{Product: *p, Collections: collections}, nil
}

// ListProducts returns products, optionally filtered by category and
// subcategory, newest first.
func (s *CatalogService) ListProducts(ctx context.Context, category, subCategory string) ([]product.Product, error) {
	return s.productRepo.List(ctx, iproductrepo.Filter{
		Category:    category,
		SubCategory: subCategory,
	})
}

// ProductsByCategory matches category and subcategory case-insensitively.
func (s *CatalogService) ProductsByCategory(ctx context.Context, category, subCategory string) ([]product.Product, error) {
	return s.productRepo.ListByCategory(ctx, category, subCategory)
}

// Search matches the query against product titles, categories and tags.
func (s *CatalogService) Search(ctx context.Context, query string) ([]product.Product, error) {
	if query == "" {
		return nil, errs.Validation("search query is required")
	}

	return s.productRepo.Search(ctx, query)
}

// UpdateProduct applies the update and reconciles collection references on
// both sides in one transaction.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, model CreateProductModel) (*product.Product, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	p, err := model.toProduct()
	if err != nil {
		return nil, err
	}

	var updated *product.Product
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		result, err := s.productRepo.Update(txCtx, id, p)
		if err != nil {
			return err
		}
		updated = result

		if err := s.collectionRepo.PullProduct(txCtx, id); err != nil {
			return err
		}

		return s.collectionRepo.AddProduct(txCtx, result.Collections, id)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProduct deletes the product and removes its reference from every
// collection in the same transaction.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := parseID(productID, "product")
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return s.collectionRepo.PullProduct(txCtx, id)
	})
}

func parseID(hex, kind string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errs.Validation("invalid %s id %q", kind, hex)
	}

	return id, nil
}

func parseIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, errs.Validation("invalid collection id %q", h)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
