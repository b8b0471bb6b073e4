package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"passvault/internal/domain"
	"passvault/internal/repository"
	"passvault/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth   service.AuthService
	users  service.UserService
	vault  service.VaultService
	logger *logrus.Logger
}

func NewHandler(auth service.AuthService, users service.UserService, vault service.VaultService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:   auth,
		users:  users,
		vault:  vault,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/login", h.login)
		api.GET("/status", h.status)
		api.POST("/user", h.createUser)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	protected := api.Group("", h.authRequired())
	{
		protected.POST("/logout", h.logout)

		protected.GET("/user/:id", h.getUser)
		protected.PUT("/user/:id", h.updateUser)
		protected.DELETE("/user/:id", h.deleteUser)

		protected.POST("/logins", h.createLogin)
		protected.GET("/logins", h.listLogins)
		protected.GET("/logins/:id", h.getLogin)
		protected.PUT("/logins/:id", h.updateLogin)
		protected.DELETE("/logins/:id", h.deleteLogin)

		protected.POST("/payments", h.createPayment)
		protected.GET("/payments", h.listPayments)
		protected.GET("/payments/:id", h.getPayment)
		protected.PUT("/payments/:id", h.updatePayment)
		protected.DELETE("/payments/:id", h.deletePayment)

		protected.POST("/notes", h.createNote)
		protected.GET("/notes", h.listNotes)
		protected.GET("/notes/:id", h.getNote)
		protected.PUT("/notes/:id", h.updateNote)
		protected.DELETE("/notes/:id", h.deleteNote)

		protected.POST("/notes/:id/attachments", h.uploadAttachment)
		protected.GET("/notes/:id/attachments", h.listAttachments)
		protected.GET("/attachments/:id", h.downloadAttachment)
		protected.DELETE("/attachments/:id", h.deleteAttachment)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// respondError maps service errors onto the API taxonomy. Internal causes are
// logged server-side; the response body stays generic.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrStorageDisabled):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage service not configured"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.GetHeader(tokenHeader)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// status reports whether the presented token would pass the auth gate.
func (h *Handler) status(c *gin.Context) {
	token := c.GetHeader(tokenHeader)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	_, err := h.auth.Validate(c.Request.Context(), token)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": err == nil})
}

type createUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterUser{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, service.UpdateUser{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type loginEntryRequest struct {
	Username       *string   `json:"username"`
	Password       *string   `json:"password"`
	Note           *string   `json:"note"`
	Email          *string   `json:"email"`
	LinkedWebsites *[]string `json:"linked_websites"`
	Collections    *[]string `json:"collections"`
}

func (h *Handler) createLogin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req loginEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := &domain.LoginEntry{}
	applyLoginEntryRequest(entry, req)

	created, err := h.vault.CreateLogin(c.Request.Context(), user.ID, entry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loginEntryToResponse(created))
}

func (h *Handler) listLogins(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := h.vault.ListLogins(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]LoginEntryResponse, len(entries))
	for i := range entries {
		resp[i] = loginEntryToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getLogin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.vault.GetLogin(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginEntryToResponse(entry))
}

func (h *Handler) updateLogin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req loginEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.vault.UpdateLogin(c.Request.Context(), user.ID, id, service.UpdateLoginEntry{
		Username:       req.Username,
		Password:       req.Password,
		Note:           req.Note,
		Email:          req.Email,
		LinkedWebsites: req.LinkedWebsites,
		Collections:    req.Collections,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginEntryToResponse(entry))
}

func (h *Handler) deleteLogin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vault.DeleteLogin(c.Request.Context(), user.ID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type paymentRequest struct {
	CardHolder      *string `json:"card_holder"`
	CardNumber      *string `json:"card_number"`
	SecurityCode    *int    `json:"security_code"`
	ExpirationMonth *int    `json:"expiration_month"`
	ExpirationYear  *int    `json:"expiration_year"`
	Name            *string `json:"name"`
	Color           *string `json:"color"`
	Note            *string `json:"note"`
}

func (h *Handler) createPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := &domain.Payment{}
	applyPaymentRequest(payment, req)

	created, err := h.vault.CreatePayment(c.Request.Context(), user.ID, payment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, paymentToResponse(created))
}

func (h *Handler) listPayments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	payments, err := h.vault.ListPayments(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]PaymentResponse, len(payments))
	for i := range payments {
		resp[i] = paymentToResponse(&payments[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payment, err := h.vault.GetPayment(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paymentToResponse(payment))
}

func (h *Handler) updatePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.vault.UpdatePayment(c.Request.Context(), user.ID, id, service.UpdatePayment{
		CardHolder:      req.CardHolder,
		CardNumber:      req.CardNumber,
		SecurityCode:    req.SecurityCode,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
		Name:            req.Name,
		Color:           req.Color,
		Note:            req.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paymentToResponse(payment))
}

func (h *Handler) deletePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vault.DeletePayment(c.Request.Context(), user.ID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type noteRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

func (h *Handler) createNote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := &domain.SecuredNote{}
	if req.Name != nil {
		note.Name = *req.Name
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}

	created, err := h.vault.CreateNote(c.Request.Context(), user.ID, note)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, noteToResponse(created))
}

func (h *Handler) listNotes(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	notes, err := h.vault.ListNotes(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]NoteResponse, len(notes))
	for i := range notes {
		resp[i] = noteToResponse(&notes[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getNote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	note, err := h.vault.GetNote(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(note))
}

func (h *Handler) updateNote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.vault.UpdateNote(c.Request.Context(), user.ID, id, service.UpdateNote{
		Name:    req.Name,
		Content: req.Content,
		Color:   req.Color,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(note))
}

func (h *Handler) deleteNote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vault.DeleteNote(c.Request.Context(), user.ID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) uploadAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	att, err := h.vault.AddAttachment(
		c.Request.Context(),
		user.ID,
		noteID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachmentToResponse(att))
}

func (h *Handler) listAttachments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	atts, err := h.vault.ListAttachments(c.Request.Context(), user.ID, noteID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]AttachmentResponse, len(atts))
	for i := range atts {
		resp[i] = attachmentToResponse(&atts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) downloadAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	att, body, err := h.vault.OpenAttachment(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer body.Close()

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, att.Size, contentType, body, map[string]string{
		"Content-Disposition": `attachment; filename="` + att.Name + `"`,
	})
}

func (h *Handler) deleteAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.vault.DeleteAttachment(c.Request.Context(), user.ID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type LoginEntryResponse struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	Note           string   `json:"note"`
	Email          string   `json:"email"`
	LinkedWebsites []string `json:"linked_websites"`
	Collections    []string `json:"collections"`
	UsedAt         string   `json:"used_at"`
}

type PaymentResponse struct {
	ID              int64  `json:"id"`
	CardHolder      string `json:"card_holder"`
	CardNumber      string `json:"card_number"`
	SecurityCode    int    `json:"security_code"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	Note            string `json:"note"`
}

type NoteResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	Color      string `json:"color"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

type AttachmentResponse struct {
	ID          int64  `json:"id"`
	NoteID      int64  `json:"note_id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	CreatedAt   string `json:"created_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func loginEntryToResponse(entry *domain.LoginEntry) LoginEntryResponse {
	return LoginEntryResponse{
		ID:             entry.ID,
		Username:       entry.Username,
		Password:       entry.Password,
		Note:           entry.Note,
		Email:          entry.Email,
		LinkedWebsites: entry.LinkedWebsites,
		Collections:    entry.Collections,
		UsedAt:         entry.UsedAt.Format(time.RFC3339),
	}
}

func paymentToResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID,
		CardHolder:      payment.CardHolder,
		CardNumber:      payment.CardNumber,
		SecurityCode:    payment.SecurityCode,
		ExpirationMonth: payment.ExpirationMonth,
		ExpirationYear:  payment.ExpirationYear,
		Name:            payment.Name,
		Color:           payment.Color,
		Note:            payment.Note,
	}
}

func noteToResponse(note *domain.SecuredNote) NoteResponse {
	return NoteResponse{
		ID:         note.ID,
		Name:       note.Name,
		Content:    note.Content,
		Color:      note.Color,
		CreatedAt:  note.CreatedAt.Format(time.RFC3339),
		ModifiedAt: note.ModifiedAt.Format(time.RFC3339),
	}
}

func attachmentToResponse(att *domain.NoteAttachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          att.ID,
		NoteID:      att.NoteID,
		Name:        att.Name,
		Size:        att.Size,
		ContentType: att.ContentType,
		CreatedAt:   att.CreatedAt.Format(time.RFC3339),
	}
}

func applyLoginEntryRequest(entry *domain.LoginEntry, req loginEntryRequest) {
	if req.Username != nil {
		entry.Username = *req.Username
	}
	if req.Password != nil {
		entry.Password = *req.Password
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	if req.Email != nil {
		entry.Email = *req.Email
	}
	if req.LinkedWebsites != nil {
		entry.LinkedWebsites = *req.LinkedWebsites
	}
	if req.Collections != nil {
		entry.Collections = *req.Collections
	}
}

func applyPaymentRequest(payment *domain.Payment, req paymentRequest) {
	if req.CardHolder != nil {
		payment.CardHolder = *req.CardHolder
	}
	if req.CardNumber != nil {
		payment.CardNumber = *req.CardNumber
	}
	if req.SecurityCode != nil {
		payment.SecurityCode = *req.SecurityCode
	}
	if req.ExpirationMonth != nil {
		payment.ExpirationMonth = *req.ExpirationMonth
	}
	if req.ExpirationYear != nil {
		payment.ExpirationYear = *req.ExpirationYear
	}
	if req.Name != nil {
		payment.Name = *req.Name
	}
	if req.Color != nil {
		payment.Color = *req.Color
	}
	if req.Note != nil {
		payment.Note = *req.Note
	}
}
