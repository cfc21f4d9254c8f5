package api

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/prepbuddy/prepbuddy/internal/repo"
	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/internal/scheduler"
	"github.com/prepbuddy/prepbuddy/internal/storage"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	repoClient repo.Client,
	sched scheduler.API,
	resumes storage.ResumeStore,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		StreamRequestBody:       true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPatch,
			fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		repo:    repoClient,
		sched:   sched,
		resumes: resumes,
		http:    fiber.New(fiberCfg),
		addr:    cfg.HTTP.Addr,
		log:     serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	repo    repo.Client
	sched   scheduler.API
	resumes storage.ResumeStore
	http    *fiber.App
	addr    string
	log     logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	err := s.repo.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close repo"))
	}

	err = s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	return errors.Collapse(errs)
}

func (s *server) setupRoutes() {
	// the static "taken" segment must be registered before the
	// ":userId/:id" wildcard so it wins the match
	s.http.Get("/mock-interviews/taken/:userId", s.handleListTaken)

	s.http.Post("/mock-interviews/:userId", s.handleRequest)
	s.http.Get("/mock-interviews/:userId", s.handleListRequested)
	s.http.Get("/mock-interviews/:userId/:id", s.handleGet)
	s.http.Patch("/mock-interviews/:userId/:id", s.handleModify)
	s.http.Delete("/mock-interviews/:userId/:id", s.handleDelete)

	s.http.Post("/mock-interviews/:interviewerId/:id/accept", s.handleAccept)
	s.http.Patch("/mock-interviews/:interviewerId/:id/feedback", s.handleFeedback)
	s.http.Patch("/mock-interviews/:userId/:id/withdraw", s.handleWithdraw)

	s.http.Get("/events/:userId", s.handleUserEvents)
}

func (s *server) handleRequest(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse multipart form"))
		return s.sendError(c, http.StatusBadRequest, "multipart form expected")
	}

	slots, err := parseSlots(formValue(form, "availableSlots"))
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "malformed \"availableSlots\"")
	}

	files := form.File["resumeFile"]
	if len(files) == 0 {
		return s.sendError(c, http.StatusBadRequest, "missing \"resumeFile\"")
	}

	resumeRef, err := s.uploadResume(c.Context(), files[0])
	if err != nil {
		return errors.WrapFail(err, "upload resume")
	}

	created, err := s.sched.Request(c.Context(), scheduler.RequestInput{
		RequesterID: c.Params("userId"),
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		Company:     formValue(form, "company"),
		Role:        formValue(form, "role"),
		ResumeRef:   resumeRef,
		Slots:       slots,
	})
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(created)
}

func (s *server) handleModify(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse multipart form"))
		return s.sendError(c, http.StatusBadRequest, "multipart form expected")
	}

	patch := scheduler.ModifyInput{
		Title:       optionalValue(form, "title"),
		Description: optionalValue(form, "description"),
		Company:     optionalValue(form, "company"),
		Role:        optionalValue(form, "role"),
	}

	if raw := optionalValue(form, "availableSlots"); raw != nil {
		patch.Slots, err = parseSlots(*raw)
		if err != nil {
			s.log.Warn(err)
			return s.sendError(c, http.StatusBadRequest, "malformed \"availableSlots\"")
		}
	}

	updated, err := s.sched.Modify(c.Context(), c.Params("id"), patch)
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	if files := form.File["resumeFile"]; len(files) > 0 && updated.Resume != "" {
		err = s.replaceResume(c.Context(), updated.Resume, files[0])
		if err != nil {
			return errors.WrapFail(err, "replace resume")
		}
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleAccept(c *fiber.Ctx) error {
	var req struct {
		SlotID string `json:"slotId"`
		Resume string `json:"resume"`
	}

	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse accept request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	booked, err := s.sched.Accept(
		c.Context(),
		c.Params("interviewerId"),
		c.Params("id"),
		req.SlotID,
		req.Resume,
	)
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(booked)
}

func (s *server) handleWithdraw(c *fiber.Ctx) error {
	updated, err := s.sched.Withdraw(c.Context(), c.Params("userId"), c.Params("id"))
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(updated)
}

func (s *server) handleFeedback(c *fiber.Ctx) error {
	var req struct {
		Feedback string `json:"feedback"`
	}

	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse feedback request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	completed, err := s.sched.Feedback(c.Context(), c.Params("interviewerId"), c.Params("id"), req.Feedback)
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(completed)
}

func (s *server) handleDelete(c *fiber.Ctx) error {
	err := s.sched.Delete(c.Context(), c.Params("userId"), c.Params("id"))
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) handleGet(c *fiber.Ctx) error {
	found, err := s.sched.Get(c.Context(), c.Params("userId"), c.Params("id"))
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(found)
}

func (s *server) handleListRequested(c *fiber.Ctx) error {
	status, err := s.statusFilter(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	found, err := s.sched.ListRequested(c.Context(), c.Params("userId"), status)
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(found)
}

func (s *server) handleListTaken(c *fiber.Ctx) error {
	status, err := s.statusFilter(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	found, err := s.sched.ListTaken(c.Context(), c.Params("userId"), status)
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(found)
}

func (s *server) handleUserEvents(c *fiber.Ctx) error {
	events, err := s.sched.UserEvents(c.Context(), c.Params("userId"))
	if err != nil {
		return s.sendSchedulerError(c, err)
	}

	return c.Status(http.StatusOK).JSON(events)
}

func (s *server) uploadResume(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	return s.resumes.Upload(ctx, fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
}

func (s *server) replaceResume(ctx context.Context, id string, fh *multipart.FileHeader) error {
	data, err := readUpload(fh)
	if err != nil {
		return err
	}

	return s.resumes.Replace(ctx, id, fh.Header.Get(fiber.HeaderContentType), data)
}

func (s *server) sendSchedulerError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		return err
	}

	s.log.Warn(err)
	return s.sendError(c, status, err.Error())
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func (s *server) statusFilter(c *fiber.Ctx) (*models.Status, error) {
	raw := c.Query("status", "")
	if raw == "" {
		return nil, nil
	}

	status, ok := models.ParseStatus(raw)
	if !ok {
		return nil, errors.Errorf("unknown status %q", raw)
	}

	return &status, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, scheduler.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scheduler.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseSlots(raw string) ([]scheduler.SlotInput, error) {
	if raw == "" {
		return nil, errors.Error("got empty \"availableSlots\" field")
	}

	var slots []scheduler.SlotInput
	err := json.Unmarshal([]byte(raw), &slots)
	return slots, errors.WrapFail(err, "unmarshal slots")
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.WrapFail(err, "open uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	return data, errors.WrapFail(err, "read uploaded file")
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func optionalValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
