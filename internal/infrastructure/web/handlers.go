package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/infrastructure/input"
	"URLAnalyzer/internal/usecase"
)

const (
	urlsField = "urls_input"
	fileField = "file_input"

	missingColumnMessage = "CSV file must contain a 'URL' column."
	noURLsMessage        = "No URLs provided."
)

type classifyRequest struct {
	URLs []string `json:"urls"`
	// Text is split like the form field.
	Text string `json:"text"`
}

type classifyResponse struct {
	Records      []domain.URLRecord  `json:"records"`
	Distribution domain.Distribution `json:"distribution"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK, s.newPage(""))
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := parseForm(r, s.maxUpload); err != nil {
		status, msg := http.StatusBadRequest, "Could not read the submitted form."
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status, msg = http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds the %d byte limit.", tooLarge.Limit)
		}
		loggerWithRequest(r).Warn().Err(err).Msg("Form parsing failed")
		page := s.newPage("")
		page.Error = msg
		s.writePage(w, r, status, page)
		return
	}

	text := r.PostFormValue(urlsField)
	page := s.newPage(text)

	inputs := []input.Input{{Source: input.ListSourceName, Reader: strings.NewReader(text)}}
	if r.MultipartForm != nil {
		file, header, err := r.FormFile(fileField)
		switch {
		case err == nil:
			defer file.Close()
			inputs = append(inputs, input.Input{Filename: header.Filename, Reader: file})
		case !errors.Is(err, http.ErrMissingFile):
			loggerWithRequest(r).Warn().Err(err).Msg("Upload unreadable")
			page.Error = "Could not read the uploaded file."
			s.writePage(w, r, http.StatusBadRequest, page)
			return
		}
	}

	raws, err := s.collector.Collect(r.Context(), inputs...)
	if err != nil {
		page.Error = "Could not read the uploaded file."
		if errors.Is(err, input.ErrMissingURLColumn) {
			page.Error = missingColumnMessage
		}
		loggerWithRequest(r).Warn().Err(err).Msg("Input collection failed")
		s.writePage(w, r, http.StatusBadRequest, page)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), Frontend, raws)
	if errors.Is(err, usecase.ErrNoURLs) {
		page.Notice = noURLsMessage
		s.writePage(w, r, http.StatusOK, page)
		return
	}
	if err != nil {
		loggerWithRequest(r).Error().Err(err).Msg("Analysis failed")
		page.Error = "Analysis failed. Please try again."
		s.writePage(w, r, http.StatusInternalServerError, page)
		return
	}

	s.writePage(w, r, http.StatusOK, page.withReport(report))
}

func (s *Server) handleClassifyAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteErrorMessage(w, r, "Request body too large", http.StatusRequestEntityTooLarge, ErrCodeTooLarge)
			return
		}
		WriteErrorMessage(w, r, "Invalid JSON request body", http.StatusBadRequest, ErrCodeBadRequest)
		return
	}

	raws := append(req.URLs, input.SplitList(req.Text)...)
	report, err := s.analyzer.Analyze(r.Context(), APIFrontend, raws)
	if errors.Is(err, usecase.ErrNoURLs) {
		WriteErrorMessage(w, r, noURLsMessage, http.StatusBadRequest, ErrCodeValidation)
		return
	}
	if err != nil {
		loggerWithRequest(r).Error().Err(err).Msg("Analysis failed")
		WriteErrorMessage(w, r, "Analysis failed", http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	WriteSuccess(w, r, classifyResponse{Records: report.Records, Distribution: report.Distribution})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteHealthy(w, r, serviceName)
}

func (s *Server) newPage(urlsInput string) pageData {
	return newPageData(urlsInput, s.collector.Extensions())
}

// writePage renders into a buffer first so template errors still produce a clean 500.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := renderPage(&buf, data); err != nil {
		loggerWithRequest(r).Error().Err(err).Msg("Template rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// parseForm accepts both multipart and urlencoded bodies.
func parseForm(r *http.Request, maxMemory int64) error {
	err := r.ParseMultipartForm(maxMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}
