package middleware

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/api/dto/common"
	"github.com/technaptix/site-api/internal/api/dto/v1/apply"
	"github.com/technaptix/site-api/internal/api/dto/v1/contact"
	"github.com/technaptix/site-api/internal/api/validation"
	"github.com/technaptix/site-api/internal/models"
	"github.com/technaptix/site-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validation.New(),
	}
}

// ValidateApplyRequest validates a careers application and stores a
// *models.Application in the context. Checks run in a fixed order: required
// text fields, presence of the cover letter, its declared type, then field
// formats and the size limit.
func (m *ValidationMiddleware) ValidateApplyRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apply.ApplyRequest
		if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			if isTooLarge(err) {
				utils.AbortWithAPIError(c, err, http.StatusRequestEntityTooLarge, common.MsgCoverLetterTooLarge)
				return
			}
			utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgMissingFields)
			return
		}

		req.Email = strings.TrimSpace(req.Email)

		verr := m.validate.Struct(&req)
		fieldErrors := validation.FormatValidationError(verr)
		if validation.HasTag(fieldErrors, "required") {
			utils.AbortWithAPIError(c, verr, http.StatusBadRequest, common.MsgMissingFields)
			return
		}

		file, err := c.FormFile(apply.CoverLetterField)
		if err != nil {
			utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgCoverLetterRequired)
			return
		}

		if !isPDF(file.Header.Get("Content-Type")) {
			utils.AbortWithAPIError(c, nil, http.StatusBadRequest, common.MsgCoverLetterNotPDF)
			return
		}

		if validation.HasTag(fieldErrors, validation.TagMailAddress) {
			utils.AbortWithAPIError(c, verr, http.StatusBadRequest, common.MsgInvalidEmail)
			return
		}
		if verr != nil {
			utils.AbortWithAPIError(c, verr, http.StatusBadRequest, common.MsgInvalidFields)
			return
		}

		if file.Size > apply.MaxCoverLetterSize {
			utils.AbortWithAPIError(c, nil, http.StatusRequestEntityTooLarge, common.MsgCoverLetterTooLarge)
			return
		}

		src, err := file.Open()
		if err != nil {
			utils.AbortWithAPIError(c, err, http.StatusInternalServerError, common.MsgApplicationFailed)
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			utils.AbortWithAPIError(c, err, http.StatusInternalServerError, common.MsgApplicationFailed)
			return
		}

		c.Set(constants.ContextKeyApplication, &models.Application{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			AreaOfInterest: req.AreaOfInterest,
			CoverLetter: models.Attachment{
				Filename:    file.Filename,
				ContentType: apply.PDFContentType,
				Data:        data,
			},
		})
		c.Next()
	}
}

// ValidateContactRequest validates a contact inquiry and stores a
// *models.ContactMessage in the context
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			switch {
			case isTooLarge(err):
				utils.AbortWithAPIError(c, err, http.StatusRequestEntityTooLarge, common.MsgRequestTooLarge)
			case errors.Is(err, io.EOF):
				utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgMissingFields)
			default:
				utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgInvalidBody)
			}
			return
		}

		req.Email = strings.TrimSpace(req.Email)

		if err := m.validate.Struct(&req); err != nil {
			fieldErrors := validation.FormatValidationError(err)
			switch {
			case validation.HasTag(fieldErrors, "required"):
				utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgMissingFields)
			case validation.HasTag(fieldErrors, validation.TagMailAddress):
				utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgInvalidEmail)
			default:
				utils.AbortWithAPIError(c, err, http.StatusBadRequest, common.MsgInvalidFields)
			}
			return
		}

		c.Set(constants.ContextKeyContact, &models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Company: string(req.Company),
			Phone:   string(req.Phone),
			Inquiry: string(req.Inquiry),
			Message: req.Message,
		})
		c.Next()
	}
}

// isPDF compares the declared media type, ignoring parameters
func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == apply.PDFContentType
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
