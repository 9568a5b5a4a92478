package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aays-store/backend/internal/service/models/collection"
	contactmodel "github.com/aays-store/backend/internal/service/models/contact"
	"github.com/aays-store/backend/internal/service/models/customer"
	"github.com/aays-store/backend/internal/service/models/order"
	"github.com/aays-store/backend/internal/service/models/product"
	"github.com/aays-store/backend/internal/service/services/catalogsvc"
	"github.com/aays-store/backend/internal/service/services/checkoutsvc"
	"github.com/aays-store/backend/internal/service/services/ordersvc"
	"github.com/aays-store/backend/internal/transport/http/adminauth"
	"github.com/aays-store/backend/internal/transport/http/checkout"
	"github.com/aays-store/backend/internal/transport/http/collections"
	"github.com/aays-store/backend/internal/transport/http/contact"
	"github.com/aays-store/backend/internal/transport/http/customers"
	"github.com/aays-store/backend/internal/transport/http/orders"
	"github.com/aays-store/backend/internal/transport/http/products"
	"github.com/aays-store/backend/internal/transport/http/webhooks"
	"github.com/aays-store/backend/pkg/http/middleware/trace"
	"github.com/aays-store/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

type orderService interface {
	CreateOrder(ctx context.Context, model ordersvc.CreateOrderModel) (*order.Order, error)
	AdvanceStatus(ctx context.Context, orderID, newStatus string) (*order.Order, error)
	ListOrders(ctx context.Context) ([]ordersvc.Summary, error)
	GetOrder(ctx context.Context, orderID string) (*ordersvc.Details, error)
	ListCustomerOrders(ctx context.Context, clerkID string) ([]ordersvc.Details, error)
	ListCustomers(ctx context.Context) ([]customer.Customer, error)
}

type catalogService interface {
	CreateCollection(ctx context.Context, title, description, image string) (*collection.Collection, error)
	ListCollections(ctx context.Context) ([]catalogsvc.CollectionDetails, error)
	GetCollection(ctx context.Context, collectionID string) (*catalogsvc.CollectionDetails, error)
	UpdateCollection(ctx context.Context, collectionID string, model catalogsvc.UpdateCollectionModel) (*collection.Collection, error)
	DeleteCollection(ctx context.Context, collectionID string) error
	CollectionProducts(ctx context.Context, collectionID string) ([]product.Product, error)
	CreateProduct(ctx context.Context, model catalogsvc.CreateProductModel) (*product.Product, error)
	GetProduct(ctx context.Context, productID string) (*catalogsvc.ProductDetails, error)
	ListProducts(ctx context.Context, category, subCategory string) ([]product.Product, error)
	ProductsByCategory(ctx context.Context, category, subCategory string) ([]product.Product, error)
	Search(ctx context.Context, query string) ([]product.Product, error)
	UpdateProduct(ctx context.Context, productID string, model catalogsvc.CreateProductModel) (*product.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type checkoutService interface {
	BuildSession(ctx context.Context, cartItems []checkoutsvc.CartItem, cust checkoutsvc.Customer) (string, error)
}

type webhookService interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

type contactService interface {
	Create(ctx context.Context, name, email, message string) (*contactmodel.Contact, error)
	List(ctx context.Context) ([]contactmodel.Contact, error)
}

type HTTPTransport struct {
	server      *http.Server
	router      *chi.Mux
	orderSvc    orderService
	catalogSvc  catalogService
	checkoutSvc checkoutService
	webhookSvc  webhookService
	contactSvc  contactService
}

func NewHTTPTransport(
	orderSvc orderService,
	catalogSvc catalogService,
	checkoutSvc checkoutService,
	webhookSvc webhookService,
	contactSvc contactService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:      server,
		router:      router,
		orderSvc:    orderSvc,
		catalogSvc:  catalogSvc,
		checkoutSvc: checkoutSvc,
		webhookSvc:  webhookSvc,
		contactSvc:  contactSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/collections", func(r chi.Router) {
		r.Get("/", h.listCollections)
		r.With(adminauth.Middleware).Post("/", h.createCollection)
		r.Route("/{collectionId}", func(r chi.Router) {
			r.Get("/", h.getCollection)
			r.Get("/products", h.collectionProducts)
			r.Group(func(r chi.Router) {
				r.Use(adminauth.Middleware)
				r.Post("/", h.updateCollection)
				r.Put("/", h.updateCollection)
				r.Delete("/", h.deleteCollection)
			})
		})
	})

	h.router.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.With(adminauth.Middleware).Post("/", h.createProduct)
		r.Get("/by-category/{category}/*", h.productsByCategory)
		r.Route("/{productId}", func(r chi.Router) {
			r.Get("/", h.getProduct)
			r.Group(func(r chi.Router) {
				r.Use(adminauth.Middleware)
				r.Patch("/", h.updateProduct)
				r.Delete("/", h.deleteProduct)
			})
		})
	})

	h.router.Get("/search/{query}", h.search)

	h.router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Get("/customers/{customerId}", h.customerOrders)
		r.Get("/{orderId}", h.getOrder)
		r.Group(func(r chi.Router) {
			r.Use(adminauth.Middleware)
			r.Post("/", h.createOrder)
			r.Post("/update-status", h.updateOrderStatus)
		})
	})

	h.router.With(adminauth.Middleware).Get("/customers", h.listCustomers)

	h.router.Post("/checkout", h.checkout)
	h.router.Route("/contact", func(r chi.Router) {
		r.Post("/", h.contact)
		r.With(adminauth.Middleware).Get("/", h.listContacts)
	})
	h.router.Post("/webhooks", h.webhook)
}

func (h *HTTPTransport) listCollections(w http.ResponseWriter, r *http.Request) {
	collections.List(w, r, h.catalogSvc)
}

func (h *HTTPTransport) createCollection(w http.ResponseWriter, r *http.Request) {
	collections.Create(w, r, h.catalogSvc)
}

func (h *HTTPTransport) getCollection(w http.ResponseWriter, r *http.Request) {
	collections.Get(w, r, h.catalogSvc)
}

func (h *HTTPTransport) updateCollection(w http.ResponseWriter, r *http.Request) {
	collections.Update(w, r, h.catalogSvc)
}

func (h *HTTPTransport) deleteCollection(w http.ResponseWriter, r *http.Request) {
	collections.Delete(w, r, h.catalogSvc)
}

func (h *HTTPTransport) collectionProducts(w http.ResponseWriter, r *http.Request) {
	collections.Products(w, r, h.catalogSvc)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	products.List(w, r, h.catalogSvc)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	products.Create(w, r, h.catalogSvc)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	products.Get(w, r, h.catalogSvc)
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	products.Update(w, r, h.catalogSvc)
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	products.Delete(w, r, h.catalogSvc)
}

func (h *HTTPTransport) productsByCategory(w http.ResponseWriter, r *http.Request) {
	products.ByCategory(w, r, h.catalogSvc)
}

func (h *HTTPTransport) search(w http.ResponseWriter, r *http.Request) {
	products.Search(w, r, h.catalogSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	orders.List(w, r, h.orderSvc)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	orders.Create(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	orders.Get(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orders.UpdateStatus(w, r, h.orderSvc)
}

func (h *HTTPTransport) customerOrders(w http.ResponseWriter, r *http.Request) {
	orders.CustomerOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) checkout(w http.ResponseWriter, r *http.Request) {
	checkout.Create(w, r, h.checkoutSvc)
}

func (h *HTTPTransport) contact(w http.ResponseWriter, r *http.Request) {
	contact.Create(w, r, h.contactSvc)
}

func (h *HTTPTransport) listContacts(w http.ResponseWriter, r *http.Request) {
	contact.List(w, r, h.contactSvc)
}

func (h *HTTPTransport) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers.List(w, r, h.orderSvc)
}

func (h *HTTPTransport) webhook(w http.ResponseWriter, r *http.Request) {
	webhooks.Handle(w, r, h.webhookSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{viper.GetString("store.url")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           viper.GetInt("server.http.cors.max_age"),
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
