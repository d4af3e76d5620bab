package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/service"

	"go.uber.org/zap"
)

// maxUploadBytes caps statement documents at 10 MB, matching the engine's
// own upload limit.
const maxUploadBytes = 10 << 20

// ============================================================
// GET / — current stage page
// ============================================================

func indexHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, svc, "", http.StatusOK, logger)
	}
}

// renderPage renders the current stage page with an optional error banner.
func renderPage(w http.ResponseWriter, svc *service.Analysis, errMsg string, status int, logger *zap.Logger) {
	page := svc.Page()
	page.Error = errMsg

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := svc.Renderer().Stage(w, page); err != nil {
		logger.Error("page render failed", zap.Error(err))
	}
}

// ============================================================
// POST /profile and POST /profile/skip
// ============================================================

func profileHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /profile")
		defer span.End()

		if err := r.ParseForm(); err != nil {
			renderPage(w, svc, "invalid form submission", http.StatusBadRequest, logger)
			return
		}

		years, _ := strconv.Atoi(r.PostFormValue("years_in_operation"))
		profile := &domain.BusinessProfile{
			Name:             r.PostFormValue("name"),
			BusinessType:     domain.BusinessType(r.PostFormValue("business_type")),
			Industry:         domain.Industry(r.PostFormValue("industry")),
			Size:             domain.BusinessSize(r.PostFormValue("size")),
			Location:         r.PostFormValue("location"),
			YearsInOperation: years,
		}

		if err := svc.SubmitProfile(profile); err != nil {
			renderPage(w, svc, errorMessage(err), errorStatus(err), logger)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func skipProfileHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SkipProfile(); err != nil {
			renderPage(w, svc, errorMessage(err), errorStatus(err), logger)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// ============================================================
// POST /analyze — manual entry submission
// ============================================================

func analyzeHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /analyze")
		defer span.End()

		if err := r.ParseForm(); err != nil {
			renderPage(w, svc, "invalid form submission", http.StatusBadRequest, logger)
			return
		}

		raw := make(map[string]string, len(domain.StatementFields))
		for _, field := range domain.StatementFields {
			raw[field] = r.PostFormValue(field)
		}

		if err := svc.Analyze(ctx, raw); err != nil {
			renderSubmissionError(w, svc, raw, err, logger)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// renderSubmissionError re-renders the financial page keeping the values the
// user typed.
func renderSubmissionError(w http.ResponseWriter, svc *service.Analysis, raw map[string]string, err error, logger *zap.Logger) {
	page := svc.Page()
	page.Error = errorMessage(err)
	if raw != nil && page.Snapshot.Stage == domain.StageFinancial {
		page.Values = raw
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(errorStatus(err))
	if rerr := svc.Renderer().Stage(w, page); rerr != nil {
		logger.Error("page render failed", zap.Error(rerr))
	}
}

// ============================================================
// POST /upload — statement document submission
// ============================================================

func uploadHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /upload")
		defer span.End()

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			renderPage(w, svc, "a statement document is required", http.StatusBadRequest, logger)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			renderPage(w, svc, "failed to read the uploaded document", http.StatusBadRequest, logger)
			return
		}

		if err := svc.Upload(ctx, header.Filename, content); err != nil {
			renderSubmissionError(w, svc, nil, err, logger)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// ============================================================
// GET /report — print report for the current result
// ============================================================

func reportHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /report")
		defer span.End()

		html, err := svc.Report(ctx)
		if err != nil {
			// No result to report on; send the user back to the flow.
			var conflict *domain.ErrStageConflict
			if errors.As(err, &conflict) {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			logger.Error("report failed", zap.Error(err))
			http.Error(w, "report unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}
}

// ============================================================
// POST /language and POST /reset
// ============================================================

func languageHandler(svc *service.Analysis, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderPage(w, svc, "invalid form submission", http.StatusBadRequest, logger)
			return
		}

		if err := svc.SetLanguage(r.PostFormValue("language")); err != nil {
			renderPage(w, svc, errorMessage(err), errorStatus(err), logger)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func resetHandler(svc *service.Analysis, _ *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Reset()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
