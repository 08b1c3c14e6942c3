package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/api/dto/common"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/mailer/mailertest"
	"github.com/technaptix/site-api/internal/models"
	"github.com/technaptix/site-api/internal/service"
	"github.com/technaptix/site-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

var mailSettings = config.Mail{
	SMTP:      config.SMTP{Username: "bot@example.com", Password: "secret"},
	CareersTo: "careers@example.com",
	ContactTo: "hello@example.com",
}

func sampleApplication() *models.Application {
	return &models.Application{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.org",
		CoverLetter: models.Attachment{
			Filename:    "cv.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		},
	}
}

func TestApplyHandler_WithoutValidatedApplication(t *testing.T) {
	sender := &mailertest.FakeSender{}
	h := NewApplyHandler(service.NewApplicationService(config.DeliverySMTP, mailSettings, sender, nil))

	c, w := testContext(http.MethodPost, "/api/apply")
	h.Submit(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.MsgApplicationFailed, w.Body.String())
	assert.Empty(t, sender.Sent())
}

func TestApplyHandler_Emailed(t *testing.T) {
	sender := &mailertest.FakeSender{}
	h := NewApplyHandler(service.NewApplicationService(config.DeliverySMTP, mailSettings, sender, nil))

	c, w := testContext(http.MethodPost, "/api/apply")
	c.Set(constants.ContextKeyApplication, sampleApplication())
	h.Submit(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp common.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, common.MsgApplicationEmailed, resp.Message)
	assert.JSONEq(t, `{"ok":true,"message":"`+common.MsgApplicationEmailed+`"}`, w.Body.String())
}

func TestApplyHandler_DiskFallback(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	h := NewApplyHandler(service.NewApplicationService(config.DeliveryDisk, config.Mail{}, &mailertest.FakeSender{}, store))

	c, w := testContext(http.MethodPost, "/api/apply")
	c.Set(constants.ContextKeyApplication, sampleApplication())
	h.Submit(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp common.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.DevFallback)
	assert.FileExists(t, resp.SavedTo)
}

func TestContactHandler(t *testing.T) {
	msg := &models.ContactMessage{Name: "Grace", Email: "grace@example.org", Message: "hi"}

	t.Run("sent", func(t *testing.T) {
		sender := &mailertest.FakeSender{}
		h := NewContactHandler(service.NewContactService(mailSettings, sender))

		c, w := testContext(http.MethodPost, "/api/contact")
		c.Set(constants.ContextKeyContact, msg)
		h.Submit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, sender.Sent(), 1)
	})

	t.Run("send fails", func(t *testing.T) {
		sender := &mailertest.FakeSender{SendErr: errors.New("dial tcp: timeout")}
		h := NewContactHandler(service.NewContactService(mailSettings, sender))

		c, w := testContext(http.MethodPost, "/api/contact")
		c.Set(constants.ContextKeyContact, msg)
		h.Submit(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, common.MsgContactFailed, w.Body.String())
	})

	t.Run("wrong context type", func(t *testing.T) {
		h := NewContactHandler(service.NewContactService(mailSettings, &mailertest.FakeSender{}))

		c, w := testContext(http.MethodPost, "/api/contact")
		c.Set(constants.ContextKeyContact, "not a message")
		h.Submit(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(config.DeliveryDisk)

	c, w := testContext(http.MethodGet, "/")
	h.Root(c)
	assert.Equal(t, Banner, w.Body.String())

	c, w = testContext(http.MethodGet, "/health")
	h.Check(c)
	var resp common.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "disk", resp.Mode)
}
