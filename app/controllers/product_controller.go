package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/pkg/bind"
	"github.com/ovenlight/bakehouse/pkg/response"
)

// thumbnailFields are the multipart file fields a product accepts
// beside the main image.
var thumbnailFields = []string{
	"thumbnail_img_1", "thumbnail_img_2", "thumbnail_img_3", "thumbnail_img_4",
}

// ProductController serves the catalog listing, detail, and admin CRUD
// endpoints.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List handles GET /api/products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	result, err := c.catalog.List(r.Context(), r.URL.Query())
	if err != nil {
		response.FaultDetail(w, "Failed to fetch products", err, map[string]interface{}{
			"query": r.URL.RawQuery,
		})
		return
	}

	response.Paginated(w, result.Items, len(result.Items),
		response.NewPagination(result.Page, result.Limit, result.Total))
}

// Menu handles GET /api/products/menu.
func (c *ProductController) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := c.catalog.Menu(r.Context(), r.URL.Query())
	if err != nil {
		response.Fault(w, "Failed to fetch menu", err)
		return
	}
	response.List(w, items, len(items))
}

// Admin handles GET /api/products/admin.
func (c *ProductController) Admin(w http.ResponseWriter, r *http.Request) {
	items, err := c.catalog.Admin(r.Context(), r.URL.Query())
	if err != nil {
		response.Fault(w, "Failed to fetch products", err)
		return
	}
	response.List(w, items, len(items))
}

// Detail handles GET /api/products/{id}.
func (c *ProductController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := c.catalog.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.Fault(w, "Failed to fetch product", err)
		return
	}

	response.Success(w, product)
}

// Create handles POST /api/products/create (multipart).
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	if err := bind.Multipart(r); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	input, errs := parseProductForm(r, nil)
	if len(errs) > 0 {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	if err := c.attachUploads(r, input); err != nil {
		response.Fault(w, "Failed to store product images", err)
		return
	}

	created, err := c.catalog.Create(r.Context(), input)
	if err != nil {
		response.Fault(w, "Failed to create product", err)
		return
	}

	response.Created(w, "Product created", created)
}

// Edit handles PUT /api/products/edit/{id} (multipart).
func (c *ProductController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := c.catalog.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.Fault(w, "Failed to fetch product", err)
		return
	}

	if err := bind.Multipart(r); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	input, errs := parseProductForm(r, product)
	if len(errs) > 0 {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	if err := c.attachUploads(r, input); err != nil {
		response.Fault(w, "Failed to store product images", err)
		return
	}

	updated, err := c.catalog.Update(r.Context(), input)
	if err != nil {
		response.Fault(w, "Failed to update product", err)
		return
	}

	response.Success(w, updated)
}

// Delete handles DELETE /api/products/delete/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := c.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.Fault(w, "Failed to delete product", err)
		return
	}

	response.Message(w, "Product deleted")
}

// parseProductForm reads product fields out of a multipart form.
// With existing == nil every required field must be present (create);
// otherwise absent fields keep their current value (edit).
func parseProductForm(r *http.Request, existing *models.Product) (*models.Product, map[string]string) {
	errs := map[string]string{}

	product := &models.Product{}
	if existing != nil {
		clone := *existing
		// Associations are re-resolved on reload; keeping them here
		// would make Save upsert review and favorite rows.
		clone.Category = nil
		clone.Reviews = nil
		clone.Favorites = nil
		product = &clone
	}

	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		product.Name = name
	} else if existing == nil {
		errs["name"] = "The name field is required."
	}

	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			errs["price"] = "The price must be a positive number."
		} else {
			product.Price = price
		}
	} else if existing == nil {
		errs["price"] = "The price field is required."
	}

	raw := r.FormValue("category_id")
	if raw == "" {
		raw = r.FormValue("categoryId")
	}
	if raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			errs["category_id"] = "The category_id must be a valid category."
		} else {
			cid := uint(id)
			product.CategoryID = &cid
		}
	} else if existing == nil {
		errs["category_id"] = "The category_id field is required."
	}

	if desc := strings.TrimSpace(r.FormValue("description")); desc != "" {
		product.Description = &desc
	}

	if raw := r.FormValue("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			errs["stock"] = "The stock must be a non-negative integer."
		} else {
			product.Stock = stock
		}
	}

	return product, errs
}

// attachUploads stores any uploaded image files and points the product
// at their public paths. Missing files leave existing values in place.
func (c *ProductController) attachUploads(r *http.Request, product *models.Product) error {
	if path, err := saveUpload(r, "img_url", "products"); err != nil {
		return err
	} else if path != nil {
		product.ImgURL = path
	}

	targets := []**string{
		&product.Thumbnail1, &product.Thumbnail2, &product.Thumbnail3, &product.Thumbnail4,
	}
	for i, field := range thumbnailFields {
		path, err := saveUpload(r, field, "products")
		if err != nil {
			return err
		}
		if path != nil {
			*targets[i] = path
		}
	}

	return nil
}
