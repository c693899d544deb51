package admin

import (
	"strconv"
	"strings"

	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/service"

	"github.com/gin-gonic/gin"
)

const imagesFormField = "images"

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// CreateProduct handles POST /api/products. A multipart body may carry up
// to the configured number of image files; a JSON body carries image URLs.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.CreateProductInput

	if isMultipart(c) {
		parsed, ok := h.bindProductForm(c)
		if !ok {
			return
		}
		input = parsed

		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "invalid multipart body")
			return
		}
		if files := form.File[imagesFormField]; len(files) > 0 {
			urls, err := h.uploadService.StoreImages(files)
			if err != nil {
				mapServiceError(c, err)
				return
			}
			input.Images = urls
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.productService.Create(input)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct handles PUT /api/products/:id. Absent fields stay as they
// are; uploaded images replace the image list.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}

	var input service.UpdateProductInput
	if isMultipart(c) {
		parsed, ok := h.bindProductFormPartial(c)
		if !ok {
			return
		}
		input = parsed

		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "invalid multipart body")
			return
		}
		if files := form.File[imagesFormField]; len(files) > 0 {
			urls, err := h.uploadService.StoreImages(files)
			if err != nil {
				mapServiceError(c, err)
				return
			}
			images := models.StringArray(urls)
			input.Images = &images
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.productService.Update(id, input)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct handles DELETE /api/products/:id. The product is
// deactivated, not erased, so order history keeps its reference.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.productService.SoftDelete(id); err != nil {
		mapServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) bindProductForm(c *gin.Context) (service.CreateProductInput, bool) {
	var input service.CreateProductInput

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return input, false
	}
	price, err := models.NewMoneyFromString(c.PostForm("price"))
	if err != nil {
		response.BadRequest(c, "invalid price")
		return input, false
	}

	input.CategoryID = uint(categoryID)
	input.Name = c.PostForm("name")
	input.Description = c.PostForm("description")
	input.Price = price
	input.SKU = c.PostForm("sku")

	if raw := c.PostForm("stock_quantity"); raw != "" {
		if input.StockQuantity, err = strconv.Atoi(raw); err != nil {
			response.BadRequest(c, "invalid stock quantity")
			return input, false
		}
	}
	if raw := c.PostForm("discount_percentage"); raw != "" {
		if input.DiscountPercentage, err = strconv.Atoi(raw); err != nil {
			response.BadRequest(c, "invalid discount percentage")
			return input, false
		}
	}
	for field, dest := range map[string]*bool{
		"featured":        &input.Featured,
		"new_arrival":     &input.NewArrival,
		"limited_edition": &input.LimitedEdition,
	} {
		if raw := c.PostForm(field); raw != "" {
			if *dest, err = strconv.ParseBool(raw); err != nil {
				response.BadRequest(c, "invalid "+field)
				return input, false
			}
		}
	}
	return input, true
}

func (h *Handler) bindProductFormPartial(c *gin.Context) (service.UpdateProductInput, bool) {
	var input service.UpdateProductInput

	if raw, set := c.GetPostForm("category_id"); set {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid category id")
			return input, false
		}
		categoryID := uint(id)
		input.CategoryID = &categoryID
	}
	if raw, set := c.GetPostForm("name"); set {
		input.Name = &raw
	}
	if raw, set := c.GetPostForm("description"); set {
		input.Description = &raw
	}
	if raw, set := c.GetPostForm("price"); set {
		price, err := models.NewMoneyFromString(raw)
		if err != nil {
			response.BadRequest(c, "invalid price")
			return input, false
		}
		input.Price = &price
	}
	if raw, set := c.GetPostForm("sku"); set {
		input.SKU = &raw
	}
	if raw, set := c.GetPostForm("stock_quantity"); set {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid stock quantity")
			return input, false
		}
		input.StockQuantity = &quantity
	}
	if raw, set := c.GetPostForm("discount_percentage"); set {
		discount, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid discount percentage")
			return input, false
		}
		input.DiscountPercentage = &discount
	}
	for field, dest := range map[string]**bool{
		"featured":        &input.Featured,
		"new_arrival":     &input.NewArrival,
		"limited_edition": &input.LimitedEdition,
		"is_active":       &input.IsActive,
	} {
		if raw, set := c.GetPostForm(field); set {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				response.BadRequest(c, "invalid "+field)
				return input, false
			}
			*dest = &value
		}
	}
	return input, true
}
