package api

import (
	"fmt"
	"net/http"
	"time"

	"pyc-official/secretariat/internal/auth"
	"pyc-official/secretariat/internal/card"
	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/logging"
)

// DownloadCardPNG renders the caller's membership card and streams it as a
// PNG attachment.
func (h *Handlers) DownloadCardPNG() http.HandlerFunc {
	return h.downloadCard("png")
}

// DownloadCardPDF renders the card onto an ID-1 sized single-page PDF.
func (h *Handlers) DownloadCardPDF() http.HandlerFunc {
	return h.downloadCard("pdf")
}

func (h *Handlers) downloadCard(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		rec, err := h.deps.Services.Profile.Resolve(r.Context(), claims.UserID(), claims.Email(), claims.DisplayName())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		if !rec.CanCheckIn() {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeNotAMember), http.StatusForbidden)
			return
		}

		renderStart := time.Now()
		img, err := h.deps.Services.Renderer.Render(r.Context(), card.Data{
			Name:        rec.Member.Name,
			MemberSince: rec.Member.MemberSince,
			MemberID:    rec.Member.ID,
		})
		if err != nil {
			logging.Error("Card render failed", "member_id", rec.Member.ID, "error", err.Error())
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeRenderFailure), http.StatusInternalServerError)
			return
		}
		h.deps.Metrics.CardRenderDuration.Observe(time.Since(renderStart).Seconds())

		var (
			data        []byte
			contentType string
			filename    string
		)
		switch format {
		case "pdf":
			data, err = card.ExportPDF(img)
			contentType = "application/pdf"
			filename = card.PDFFilename(rec.Member.Name)
		default:
			data, err = card.ExportPNG(img)
			contentType = "image/png"
			filename = card.PNGFilename(rec.Member.Name)
		}
		if err != nil {
			logging.Error("Card export failed", "member_id", rec.Member.ID, "format", format, "error", err.Error())
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeRenderFailure), http.StatusInternalServerError)
			return
		}

		h.deps.Metrics.CardsRenderedTotal.WithLabelValues(format).Inc()

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		if _, err := w.Write(data); err != nil {
			logging.Warn("Card download interrupted", "member_id", rec.Member.ID, "error", err.Error())
		}
	}
}
