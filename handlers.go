package main

import (
	"errors"
	"net/http"
	"strconv"

	"sparksite/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", loginHandler)

	// Public reads
	r.GET("/gallery", listGalleryHandler)
	r.GET("/gallery/:id", getGalleryHandler)
	r.GET("/reviews", listReviewsHandler)
	r.GET("/reviews/:id", getReviewHandler)

	// Uploaded binaries are hotlinked by the front-end via *_path values.
	r.Static("/uploads", uploadBaseDir())

	// Writes require a bearer token
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.POST("/gallery", createGalleryHandler)
	authGroup.PUT("/gallery/:id", updateGalleryHandler)
	authGroup.DELETE("/gallery/:id", deleteGalleryHandler)
	authGroup.POST("/reviews", createReviewHandler)
	authGroup.PUT("/reviews/:id", updateReviewHandler)
	authGroup.DELETE("/reviews/:id", deleteReviewHandler)
}

// jwtAuthMiddleware gates mutating routes. The two rejection states are kept
// distinct: no token at all is 401, a bad or expired one is 403.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}
		id, username, err := parseToken(authHeader[7:])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", id)
		c.Set("username", username)
		c.Next()
	}
}

func loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateLogin(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ValidatePassword(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	user, err := getAdminByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	token, err := issueToken(user)
	if err != nil {
		zlog.Errorw("failed to sign token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"id": user.ID, "username": user.Username},
	})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func listGalleryHandler(c *gin.Context) {
	items, err := listGalleryImages(c.Query("category"))
	if err != nil {
		zlog.Errorw("gallery list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func getGalleryHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	img, err := getGalleryImage(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		zlog.Errorw("gallery get failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, img)
}

// galleryFormFromRequest reads the scalar multipart fields and notes which
// file parts are attached, without persisting anything yet.
func galleryFormFromRequest(c *gin.Context) galleryForm {
	var f galleryForm
	f.Title, f.HasTitle = c.GetPostForm("title")
	f.Description, f.HasDescription = c.GetPostForm("description")
	f.Category, f.HasCategory = c.GetPostForm("category")
	if raw, ok := c.GetPostForm("is_before_after"); ok {
		f.HasFlag = true
		f.IsBeforeAfter = raw == "true"
	}
	_, errImg := c.FormFile("image")
	_, errBefore := c.FormFile("before_image")
	_, errAfter := c.FormFile("after_image")
	f.HasImage = errImg == nil
	f.HasBefore = errBefore == nil
	f.HasAfter = errAfter == nil
	return f
}

// intakeStatus maps file-intake failures onto the response taxonomy.
func intakeStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// saveAttachedFile persists the named part if present. Returns nil when the
// part is absent.
func saveAttachedFile(c *gin.Context, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	name, err := saveGalleryFile(c, fh)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func createGalleryHandler(c *gin.Context) {
	f := galleryFormFromRequest(c)
	if err := validateGalleryCreate(f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img := models.GalleryImage{
		Title:         f.Title,
		Description:   f.Description,
		Category:      f.Category,
		IsBeforeAfter: f.IsBeforeAfter,
	}
	// Files saved before a later failure are left behind; see DESIGN.md on
	// the accepted orphaning risk.
	for _, part := range []struct {
		field string
		dst   **string
	}{
		{"image", &img.ImagePath},
		{"before_image", &img.BeforeImagePath},
		{"after_image", &img.AfterImagePath},
	} {
		name, err := saveAttachedFile(c, part.field)
		if err != nil {
			status, msg := intakeStatus(err)
			if status == http.StatusInternalServerError {
				zlog.Errorw("gallery file save failed", "field", part.field, "error", err)
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		*part.dst = name
	}

	if err := createGalleryImage(&img); err != nil {
		zlog.Errorw("gallery create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	created, err := getGalleryImage(img.ID)
	if err != nil {
		zlog.Errorw("gallery readback failed", "id", img.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully", "image": created})
}

func updateGalleryHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	f := galleryFormFromRequest(c)
	if err := validateGalleryUpdate(f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := getGalleryImage(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		zlog.Errorw("gallery get failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	fields := map[string]any{}
	if f.HasTitle {
		fields["title"] = f.Title
	}
	if f.HasDescription {
		fields["description"] = f.Description
	}
	if f.HasCategory {
		fields["category"] = f.Category
	}
	if f.HasFlag {
		fields["is_before_after"] = f.IsBeforeAfter
	}
	for _, part := range []struct {
		field  string
		column string
	}{
		{"image", "image_path"},
		{"before_image", "before_image_path"},
		{"after_image", "after_image_path"},
	} {
		name, err := saveAttachedFile(c, part.field)
		if err != nil {
			status, msg := intakeStatus(err)
			if status == http.StatusInternalServerError {
				zlog.Errorw("gallery file save failed", "field", part.field, "error", err)
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		if name != nil {
			fields[part.column] = *name
		}
	}

	matched, err := updateGalleryImage(id, fields)
	if err != nil {
		zlog.Errorw("gallery update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	updated, err := getGalleryImage(id)
	if err != nil {
		zlog.Errorw("gallery readback failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image updated successfully", "image": updated})
}

func deleteGalleryHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	img, err := getGalleryImage(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		zlog.Errorw("gallery get failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Best-effort binary cleanup; failures never block the row delete.
	for _, name := range img.Paths() {
		removeGalleryFile(name)
	}

	matched, err := deleteGalleryImage(id)
	if err != nil {
		zlog.Errorw("gallery delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

func listReviewsHandler(c *gin.Context) {
	items, err := listReviews()
	if err != nil {
		zlog.Errorw("review list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func getReviewHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}
	rv, err := getReview(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		zlog.Errorw("review get failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rv)
}

func createReviewHandler(c *gin.Context) {
	var req reviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateReviewCreate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv := models.Review{
		Name:     req.Name,
		Location: req.Location,
		Rating:   *req.Rating,
		Text:     req.Text,
		Service:  req.Service,
	}
	if err := createReview(&rv); err != nil {
		zlog.Errorw("review create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	created, err := getReview(rv.ID)
	if err != nil {
		zlog.Errorw("review readback failed", "id", rv.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "review": created})
}

func updateReviewHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}
	var req reviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validateReviewUpdate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Service != nil {
		fields["service"] = *req.Service
	}
	matched, err := updateReview(id, fields)
	if err != nil {
		zlog.Errorw("review update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	updated, err := getReview(id)
	if err != nil {
		zlog.Errorw("review readback failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": updated})
}

func deleteReviewHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}
	matched, err := deleteReview(id)
	if err != nil {
		zlog.Errorw("review delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
