package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/glbatch/buko-service/internal/buko"
	"github.com/glbatch/buko-service/internal/logging"
	"github.com/glbatch/buko-service/internal/service"
)

type ConfigurationsHandler struct {
	maxBodyBytes int64
}

func NewConfigurationsHandler(maxBodyBytes int64) *ConfigurationsHandler {
	return &ConfigurationsHandler{maxBodyBytes: maxBodyBytes}
}

type configurationsRequest struct {
	BukoFile string `json:"buko_file"`
}

type configurationPayload struct {
	Line           int                   `json:"line"`
	Classification classificationPayload `json:"classification"`
	Record         recordPayload         `json:"record"`
	Raw            string                `json:"raw"`
}

type configurationsResponse struct {
	Configurations []configurationPayload `json:"configurations"`
	Summary        service.Summary        `json:"summary"`
	FilterChoices  map[string][]string    `json:"filter_choices"`
}

func queryFromRequest(r *http.Request) service.ConfigurationQuery {
	q := r.URL.Query()
	return service.ConfigurationQuery{
		Search:     q.Get("search"),
		BEType:     q.Get("be_type"),
		Source:     q.Get("source"),
		Buchart:    q.Get("buchart"),
		Betragsart: q.Get("betragsart"),
	}
}

// List decodes the uploaded BUKO file and returns its usable configurations,
// narrowed by the search/filter query, along with the aggregate summary and
// the distinct values available for each filter.
func (h *ConfigurationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var req configurationsRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}
	if req.BukoFile == "" {
		RespondValidationError(w, []FieldError{{Field: "buko_file", Message: "required"}})
		return
	}

	all := service.LoadConfigurations(service.SplitFile(req.BukoFile))
	filtered := service.Filter(all, queryFromRequest(r))

	payload := make([]configurationPayload, len(filtered))
	for i, c := range filtered {
		payload[i] = configurationPayload{
			Line:           c.Line,
			Classification: classificationToPayload(c.Classification),
			Record:         recordToPayload(c.Record),
			Raw:            c.Raw,
		}
	}

	RespondSuccess(w, http.StatusOK, configurationsResponse{
		Configurations: payload,
		Summary:        service.Summarize(filtered),
		FilterChoices: map[string][]string{
			"be_type":    service.FilterValues(all, func(c buko.Configuration) string { return c.Classification.BEType }),
			"source":     service.FilterValues(all, func(c buko.Configuration) string { return c.Record.Source }),
			"buchart":    service.FilterValues(all, func(c buko.Configuration) string { return c.Record.Buchart }),
			"betragsart": service.FilterValues(all, func(c buko.Configuration) string { return c.Record.Betragsart }),
		},
	})
}

// Export streams the filtered configuration set as a CSV or XLSX attachment.
func (h *ConfigurationsHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req configurationsRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}
	if req.BukoFile == "" {
		RespondValidationError(w, []FieldError{{Field: "buko_file", Message: "required"}})
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	configs := service.Filter(
		service.LoadConfigurations(service.SplitFile(req.BukoFile)),
		queryFromRequest(r),
	)

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		data, err = service.ExportCSV(configs)
		contentType = "text/csv"
	case "xlsx":
		data, err = service.ExportXLSX(configs)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		RespondValidationError(w, []FieldError{{Field: "format", Message: "must be csv or xlsx"}})
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("export failed", "format", format, "error", err)
		RespondAppError(w, ErrInternalError, nil)
		return
	}

	filename := fmt.Sprintf("buko_configurations_%s.%s", time.Now().UTC().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.FromContext(r.Context()).Error("failed to write export", "error", err)
	}
}
