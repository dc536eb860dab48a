package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"phonetech/internal/models"
	"phonetech/internal/view"
)

// phoneForm mirrors the add/edit phone form.
type phoneForm struct {
	Brand         string   `form:"brand" binding:"required"`
	Model         string   `form:"model" binding:"required"`
	Price         string   `form:"price" binding:"required"`
	StockQuantity string   `form:"stock_quantity" binding:"required"`
	Storage       string   `form:"storage" binding:"required"`
	Color         string   `form:"color" binding:"required"`
	ScreenSize    string   `form:"screen_size"`
	Camera        string   `form:"camera"`
	Battery       string   `form:"battery"`
	Processor     string   `form:"processor"`
	ImageURL      string   `form:"image_url"`
	Description   string   `form:"description"`
	Features      []string `form:"features"`
}

// featureOptions are the checkbox choices on the phone form.
var featureOptions = []string{
	"5G", "Wireless Charging", "Fast Charging", "Face ID",
	"Fingerprint Sensor", "Water Resistant", "NFC", "Dual SIM",
}

// renderPhoneForm serves both add and edit: a non-zero id prefills the form
// from the backend and switches the page into edit mode.
func renderPhoneForm(c *gin.Context, deps *Deps, editID int) {
	const route = "SECTION add-phone"

	data := pageData(c, deps, view.AddPhone)
	data["FeatureOptions"] = featureOptions

	if raw := c.Query("edit"); editID == 0 && raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			editID = id
		}
	}

	if editID > 0 {
		phone, err := deps.API.GetPhone(c.Request.Context(), editID)
		if err != nil {
			failToSection(c, deps, route, err, "/section/phones")
			return
		}
		data["Phone"] = phone
		data["EditMode"] = true
		data["Title"] = "Edit Phone"
	}

	c.HTML(http.StatusOK, view.Describe(view.AddPhone).Template, data)
}

func phoneFromForm(form phoneForm) (models.Phone, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || price <= 0 {
		return models.Phone{}, fmt.Errorf("invalid price")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(form.StockQuantity))
	if err != nil || stock < 0 {
		return models.Phone{}, fmt.Errorf("invalid stock quantity")
	}

	return models.Phone{
		Brand:         strings.TrimSpace(form.Brand),
		Model:         strings.TrimSpace(form.Model),
		Price:         price,
		StockQuantity: stock,
		Storage:       strings.TrimSpace(form.Storage),
		Color:         strings.TrimSpace(form.Color),
		ScreenSize:    strings.TrimSpace(form.ScreenSize),
		Camera:        strings.TrimSpace(form.Camera),
		Battery:       strings.TrimSpace(form.Battery),
		Processor:     strings.TrimSpace(form.Processor),
		ImageURL:      strings.TrimSpace(form.ImageURL),
		Description:   strings.TrimSpace(form.Description),
		Features:      models.FeatureList(form.Features),
	}, nil
}

// CreatePhone handles the add-phone form submit.
func CreatePhone(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/phones"

		token, _ := deps.Sessions.Current(c.Request)

		var form phoneForm
		if err := c.ShouldBind(&form); err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", validationMessage(err))
			c.Redirect(http.StatusSeeOther, "/section/add-phone")
			return
		}

		phone, err := phoneFromForm(form)
		if err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", err.Error())
			c.Redirect(http.StatusSeeOther, "/section/add-phone")
			return
		}

		id, err := deps.API.CreatePhone(c.Request.Context(), token, phone)
		if err != nil {
			failToSection(c, deps, route, err, "/section/add-phone")
			return
		}

		log.Printf("[%s] phone %d added: %s %s", route, id, phone.Brand, phone.Model)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Phone added successfully!")
		c.Redirect(http.StatusSeeOther, "/section/phones")
	}
}

// UpdatePhone handles the edit-phone form submit.
func UpdatePhone(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/phones/:id"

		token, _ := deps.Sessions.Current(c.Request)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.Redirect(http.StatusSeeOther, "/section/phones")
			return
		}

		var form phoneForm
		if err := c.ShouldBind(&form); err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", validationMessage(err))
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/section/add-phone?edit=%d", id))
			return
		}

		phone, err := phoneFromForm(form)
		if err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", err.Error())
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/section/add-phone?edit=%d", id))
			return
		}

		if err := deps.API.UpdatePhone(c.Request.Context(), token, id, phone); err != nil {
			failToSection(c, deps, route, err, "/section/phones")
			return
		}

		log.Printf("[%s] phone %d updated", route, id)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Phone updated successfully!")
		c.Redirect(http.StatusSeeOther, "/section/phones")
	}
}

// DeletePhone removes a phone and drops it from the cached catalog so the
// next render is already consistent.
func DeletePhone(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/phones/:id"

		token, _ := deps.Sessions.Current(c.Request)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.Redirect(http.StatusSeeOther, "/section/phones")
			return
		}

		if err := deps.API.DeletePhone(c.Request.Context(), token, id); err != nil {
			failToSection(c, deps, route, err, "/section/phones")
			return
		}
		deps.Catalog.Remove(id)

		log.Printf("[%s] phone %d deleted", route, id)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Phone deleted!")
		c.Redirect(http.StatusSeeOther, "/section/phones")
	}
}
