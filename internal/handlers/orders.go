package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"phonetech/internal/api"
	"phonetech/internal/pricing"
	"phonetech/internal/view"
)

// orderForm mirrors the order page fields. Validation runs before any
// request reaches the backend; an invalid form never leaves the client.
type orderForm struct {
	PhoneID         int    `form:"phone_id" binding:"required"`
	CustomerName    string `form:"customer_name" binding:"required"`
	CustomerEmail   string `form:"customer_email" binding:"required,email"`
	CustomerPhone   string `form:"customer_phone" binding:"required"`
	Quantity        string `form:"quantity"`
	HouseNumber     string `form:"house_number" binding:"required"`
	StreetAddress   string `form:"street_address" binding:"required"`
	DeliveryCity    string `form:"delivery_city" binding:"required"`
	DeliveryState   string `form:"delivery_state" binding:"required"`
	DeliveryZip     string `form:"delivery_zip" binding:"required"`
	DeliveryCountry string `form:"delivery_country" binding:"required"`
	DeliveryNotes   string `form:"delivery_notes"`
}

// renderOrderForm shows the order page for ?phone=ID. The quantity query
// parameter re-renders the totals, recomputed on every change.
func renderOrderForm(c *gin.Context, deps *Deps) {
	const route = "SECTION order-phone"

	token, user := deps.Sessions.Current(c.Request)
	if token == "" || user == nil {
		deps.Sessions.AddFlash(c.Request, c.Writer, "info", "Please log in to place an order.")
		c.Redirect(http.StatusSeeOther, "/section/login")
		return
	}

	phoneID, err := strconv.Atoi(c.Query("phone"))
	if err != nil || phoneID <= 0 {
		c.Redirect(http.StatusSeeOther, "/section/phones")
		return
	}

	phone, err := deps.API.GetPhone(c.Request.Context(), phoneID)
	if err != nil {
		failToSection(c, deps, route, err, "/section/phones")
		return
	}

	if !phone.InStock() {
		deps.Sessions.AddFlash(c.Request, c.Writer, "error", "This phone is out of stock.")
		c.Redirect(http.StatusSeeOther, "/section/phones")
		return
	}

	requested := pricing.ParseQuantity(c.DefaultQuery("quantity", "1"))
	quote := pricing.Calculate(phone.Price, phone.StockQuantity, requested)

	data := pageData(c, deps, view.OrderPhone)
	data["Phone"] = phone
	data["Quote"] = quote
	if quote.Clamped {
		data["StockWarning"] = fmt.Sprintf("Only %d units available in stock!", phone.StockQuantity)
	}
	c.HTML(http.StatusOK, view.Describe(view.OrderPhone).Template, data)
}

// PlaceOrder validates and submits the order form.
func PlaceOrder(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"

		token, user := deps.Sessions.Current(c.Request)
		if token == "" || user == nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "info", "Please log in to place an order.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			return
		}

		var form orderForm
		if err := c.ShouldBind(&form); err != nil {
			log.Printf("[%s] validation failed: %v", route, err)
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", validationMessage(err))
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/section/order-phone?phone=%s", c.PostForm("phone_id")))
			return
		}

		phone, err := deps.API.GetPhone(c.Request.Context(), form.PhoneID)
		if err != nil {
			failToSection(c, deps, route, err, "/section/phones")
			return
		}

		quantity := pricing.ParseQuantity(form.Quantity)
		if quantity > phone.StockQuantity {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error",
				fmt.Sprintf("Sorry, only %d units available in stock!", phone.StockQuantity))
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/section/order-phone?phone=%d", form.PhoneID))
			return
		}
		if quantity < 1 {
			quantity = 1
		}

		orderID, err := deps.API.CreateOrder(c.Request.Context(), token, api.OrderRequest{
			PhoneID:         form.PhoneID,
			CustomerName:    form.CustomerName,
			CustomerEmail:   form.CustomerEmail,
			CustomerPhone:   form.CustomerPhone,
			Quantity:        quantity,
			HouseNumber:     form.HouseNumber,
			StreetAddress:   form.StreetAddress,
			DeliveryCity:    form.DeliveryCity,
			DeliveryState:   form.DeliveryState,
			DeliveryZip:     form.DeliveryZip,
			DeliveryCountry: form.DeliveryCountry,
			DeliveryNotes:   form.DeliveryNotes,
		})
		if err != nil {
			failToSection(c, deps, route, err, fmt.Sprintf("/section/order-phone?phone=%d", form.PhoneID))
			return
		}

		log.Printf("[%s] order %d placed by %s", route, orderID, user.Username)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success",
			fmt.Sprintf("Order placed successfully! Order ID: #%d", orderID))
		c.Redirect(http.StatusSeeOther, "/section/phones")
	}
}

// validationMessage turns binding errors into the inline alert text, field
// by field.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Please fill in all required fields."
	}

	for _, fieldError := range validationErrors {
		field := snakeCase(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			return fmt.Sprintf("Please fill in the required field %q.", field)
		case "email":
			return fmt.Sprintf("Field %q must be a valid email address.", field)
		default:
			return fmt.Sprintf("Field %q is invalid.", field)
		}
	}
	return "Please fill in all required fields."
}

// snakeCase maps struct field names back to their form field names
// (CustomerEmail -> customer_email, PhoneID -> phone_id).
func snakeCase(field string) string {
	runes := []rune(field)
	var out []rune
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
				out = append(out, '_')
			}
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
