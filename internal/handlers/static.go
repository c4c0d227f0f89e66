package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/models"
	"github.com/amaumene/cinetro/internal/view"
)

type contactBody struct {
	Form    models.ContactForm
	Success string
	Error   string
}

func (h *Handler) handleAbout(c *gin.Context) {
	h.render(c, http.StatusOK, "about", "About Us", nil)
}

func (h *Handler) handlePrivacy(c *gin.Context) {
	h.render(c, http.StatusOK, "privacy", "Privacy Policy", nil)
}

func (h *Handler) handleTerms(c *gin.Context) {
	h.render(c, http.StatusOK, "terms", "Terms of Service", nil)
}

func (h *Handler) handleContact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact", "Contact Us", contactBody{})
}

// handleContactSubmit validates the form and relays it to the catalog API. The fields
// are kept on failure and cleared on success.
func (h *Handler) handleContactSubmit(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		h.services.Logger.Debugf("[Contact] invalid form: %v", err)
	}
	form.Normalize()

	if problem := form.Validate(); problem != "" {
		h.render(c, http.StatusUnprocessableEntity, "contact", "Contact Us", contactBody{Form: form, Error: problem})
		return
	}

	resp, err := h.services.Catalog.SubmitContact(c.Request.Context(), form)
	if err != nil {
		h.services.Logger.Warnf("[Contact] submission failed: %v", err)
		h.render(c, http.StatusOK, "contact", "Contact Us", contactBody{Form: form, Error: view.ErrorMessage(err)})
		return
	}

	h.render(c, http.StatusOK, "contact", "Contact Us", contactBody{Success: resp.Message})
}
