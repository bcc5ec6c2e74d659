package objects

import (
	"errors"
	"net/url"

	"object-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for buckets and objects.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the bucket and object routes.
// Only create, upload and publish are exposed over HTTP.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api/v1")
	api.Post("/bucket/:bucketName/object", h.HandleUploadObject)
	api.Post("/:bucketName", h.HandleCreateBucket)
	api.Post("/:bucketName/object/:key", h.HandlePublishObject)
}

// HandleCreateBucket creates a bucket and waits until it exists.
// @Summary Create Bucket
// @Description Creates a bucket and blocks until the storage provider reports it as existing.
// @Tags buckets
// @Param bucketName path string true "Bucket name"
// @Success 200 "Bucket created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/{bucketName} [post]
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	bucket := param(c, "bucketName")
	l := logger.WithRayID(h.repo.logger, c)

	if err := h.repo.CreateBucket(c.Context(), bucket); err != nil {
		l.Error("Create bucket failed", zap.String("bucket", bucket), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// HandleUploadObject uploads a file into a bucket.
// @Summary Upload Object
// @Description Uploads a file. The key and display name are the fileName field, or the uploaded file's name when it is absent.
// @Tags objects
// @Accept mpfd
// @Produce json
// @Param bucketName path string true "Bucket name"
// @Param file formData file true "Payload"
// @Param fileName formData string false "Key and display name"
// @Success 200 {object} models.Object "Stored object"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/bucket/{bucketName}/object [post]
func (h *Handler) HandleUploadObject(c *fiber.Ctx) error {
	bucket := param(c, "bucketName")
	l := logger.WithRayID(h.repo.logger, c)

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn("Upload without a readable file", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'file' is required",
		})
	}

	fileName := c.FormValue("fileName")
	if fileName == "" {
		fileName = c.Query("fileName")
	}
	if fileName == "" {
		fileName = file.Filename
	}

	payload, err := file.Open()
	if err != nil {
		l.Warn("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer payload.Close()

	object, err := h.repo.Store(c.Context(), bucket, fileName, fileName, payload, file.Size)
	if err != nil {
		l.Error("Upload failed", zap.String("bucket", bucket), zap.String("key", fileName), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(object)
}

// HandlePublishObject makes an object publicly readable.
// @Summary Publish Object
// @Description Replaces the object's ACL with public-read.
// @Tags objects
// @Param bucketName path string true "Bucket name"
// @Param key path string true "Object key (URL encoded)"
// @Success 200 "Object is public"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/{bucketName}/object/{key} [post]
func (h *Handler) HandlePublishObject(c *fiber.Ctx) error {
	bucket := param(c, "bucketName")
	key := param(c, "key")
	l := logger.WithRayID(h.repo.logger, c)

	if err := h.repo.MakePublic(c.Context(), bucket, key); err != nil {
		l.Error("Publish failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).Send(nil)
}

// param returns a decoded route parameter so keys may carry escaped slashes.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrEmptyBucket) || errors.Is(err, ErrEmptyKey) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
