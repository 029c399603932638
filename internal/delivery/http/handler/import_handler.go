package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"skills-radar/internal/delivery/http/middleware"
	"skills-radar/internal/pipeline"
	"skills-radar/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// SnapshotInvalidator drops the assistant's cached team context after bulk
// writes, so the next question sees the imported data.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ImportHandler struct {
	memberImporter *pipeline.MemberImporter
	entityImporter *pipeline.EntityImporter
	smartImporter  *pipeline.SmartImporter
	snapshot       SnapshotInvalidator
}

type smartCommitRequest struct {
	Rows         []pipeline.Row   `json:"rows"`
	Mapping      pipeline.Mapping `json:"mapping"`
	ExcludedRows []int            `json:"excludedRows"`
}

func NewImportHandler(
	memberImporter *pipeline.MemberImporter,
	entityImporter *pipeline.EntityImporter,
	smartImporter *pipeline.SmartImporter,
	snapshot SnapshotInvalidator,
) *ImportHandler {
	return &ImportHandler{
		memberImporter: memberImporter,
		entityImporter: entityImporter,
		smartImporter:  smartImporter,
		snapshot:       snapshot,
	}
}

func (h *ImportHandler) invalidateSnapshot(ctx context.Context) {
	if h.snapshot == nil {
		return
	}
	_ = h.snapshot.Invalidate(ctx)
}

func (h *ImportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/imports")
	grp.Post("/members", h.ImportMembers)
	grp.Get("/members/template", h.MemberTemplate)
	grp.Post("/entities", h.ImportEntities)
	grp.Post("/smart/preview", h.SmartPreview)
	grp.Post("/smart/commit", h.SmartCommit)
}

func (h *ImportHandler) ImportMembers(c fiber.Ctx) error {
	name, data, err := uploadedFile(c)
	if err != nil {
		return err
	}

	rows, err := pipeline.ParseTable(name, data)
	if err != nil {
		if errors.Is(err, pipeline.ErrUnparseableFile) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unparseable file", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res, rowErrs, err := h.memberImporter.Run(c.Context(), rows)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if len(rowErrs) > 0 {
		return response.Error(c, fiber.StatusUnprocessableEntity, "Import aborted", map[string]any{"errors": rowErrs})
	}
	h.invalidateSnapshot(c.Context())
	return response.Success(c, fiber.StatusOK, "Members imported successfully", res)
}

func (h *ImportHandler) MemberTemplate(c fiber.Ctx) error {
	data, err := pipeline.MemberImportTemplate()
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="member-import-template.xlsx"`)
	return c.Send(data)
}

func (h *ImportHandler) ImportEntities(c fiber.Ctx) error {
	_, data, err := uploadedFile(c)
	if err != nil {
		return err
	}

	sheets, err := pipeline.ParseWorkbook(data)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unparseable workbook", nil, err)
	}

	res, rowErrs, err := h.entityImporter.Run(c.Context(), sheets)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	h.invalidateSnapshot(c.Context())

	data2 := map[string]any{"result": res}
	if len(rowErrs) > 0 {
		data2["errors"] = rowErrs
	}
	return response.Success(c, fiber.StatusOK, "Entities imported", data2)
}

// SmartPreview sniffs the upload into rows and infers a mapping. When the
// payload contains several candidate arrays, the choices come back instead
// and the caller re-posts with the "array" form field naming the one to use.
func (h *ImportHandler) SmartPreview(c fiber.Ctx) error {
	_, data, err := uploadedFile(c)
	if err != nil {
		return err
	}

	if key := c.FormValue("array"); key != "" {
		rows, err := pipeline.SelectArray(data, key)
		if err != nil {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unparseable file", nil, err)
		}
		preview, err := h.smartImporter.PreviewRows(c.Context(), rows)
		if err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, preview)
	}

	preview, err := h.smartImporter.Preview(c.Context(), data)
	if err != nil {
		if errors.Is(err, pipeline.ErrUnparseableFile) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unparseable file", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, preview)
}

func (h *ImportHandler) SmartCommit(c fiber.Ctx) error {
	var req smartCommitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if len(req.Rows) == 0 || req.Mapping.Entity == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, nil)
	}

	excluded := make(map[int]bool, len(req.ExcludedRows))
	for _, i := range req.ExcludedRows {
		excluded[i] = true
	}

	res, rowErrs, err := h.smartImporter.Commit(c.Context(), req.Rows, req.Mapping, excluded)
	if err != nil {
		return mapUsecaseError(err)
	}

	h.invalidateSnapshot(c.Context())

	data := map[string]any{"result": res}
	if len(rowErrs) > 0 {
		data["errors"] = rowErrs
	}
	return response.Success(c, fiber.StatusOK, "Import committed", data)
}

func uploadedFile(c fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}
	data, err := readMultipartFile(fh)
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return fh.Filename, data, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
