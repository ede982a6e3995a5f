package routing

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/iziplay/isbn-api/pkg/config"
	"github.com/iziplay/isbn-api/pkg/isbn"
	"github.com/iziplay/isbn-api/pkg/stats"
	"github.com/iziplay/isbn-api/pkg/telemetry"
)

const (
	OperationValidate  = "validate"
	OperationConvert   = "convert"
	OperationNormalize = "normalize"
	OperationURL       = "url"
)

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type ISBNInput struct {
	ISBN string `query:"isbn" doc:"ISBN10 or ISBN13 code, hyphens and spaces allowed"`
}

type Validation struct {
	ISBN       string    `json:"isbn"`
	Normalized string    `json:"normalized"`
	Valid      bool      `json:"valid"`
	Kind       isbn.Kind `json:"kind"`
	Reason     string    `json:"reason,omitempty"`
}

type ValidateOutput struct {
	Body Validation
}

type Conversion struct {
	ISBN      string    `json:"isbn"`
	Converted string    `json:"converted"`
	Kind      isbn.Kind `json:"kind"`
}

type ConvertOutput struct {
	Body Conversion
}

type NormalizeInput struct {
	Body struct {
		ISBN *string `json:"isbn,omitempty" required:"false" nullable:"true" doc:"ISBN to clean"`
	}
}

type NormalizeOutput struct {
	Body struct {
		Normalized string `json:"normalized"`
	}
}

type BookURLInput struct {
	Body struct {
		BaseURL string  `json:"baseUrl,omitempty" required:"false" doc:"URL prefix the ISBN10 is appended to, defaults to Amazon"`
		ISBN    *string `json:"isbn,omitempty" required:"false" nullable:"true" doc:"ISBN10 or ISBN13 code"`
	}
}

type BookURLOutput struct {
	Body struct {
		URL string `json:"url"`
	}
}

type StatsOutput struct {
	Body stats.Snapshot
}

func observe(operation string, err error) {
	stats.GetStatsInstance().Record(operation, err == nil)
	telemetry.ObserveOperation(operation, err)
}

func Setup(api huma.API, cfg *config.Config) {
	oapi := api.OpenAPI()
	if oapi.Components.SecuritySchemes == nil {
		oapi.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	oapi.Components.SecuritySchemes[bearerScheme] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}

	api.UseMiddleware(authMiddleware(api, cfg.JWTSecret))

	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      "GET",
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ValidateISBN",
		Method:      "GET",
		Path:        "/v1/isbn/validate",
		Summary:     "Validate an ISBN",
		Description: "Check an ISBN10 or ISBN13 code against its check digit",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *ISBNInput) (*ValidateOutput, error) {
		err := isbn.Check(input.ISBN)
		observe(OperationValidate, err)

		resp := &ValidateOutput{}
		resp.Body = Validation{
			ISBN:       input.ISBN,
			Normalized: isbn.Clean(input.ISBN),
			Valid:      err == nil,
			Kind:       isbn.KindOf(input.ISBN),
		}
		if err != nil {
			resp.Body.Reason = err.Error()
			slog.DebugContext(ctx, "ISBN rejected", "isbn", input.ISBN, "reason", err)
		}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ConvertISBN",
		Method:      "GET",
		Path:        "/v1/isbn/convert",
		Summary:     "Convert an ISBN",
		Description: "Convert an ISBN10 to ISBN13 or an ISBN13 to ISBN10. The input check digit is not verified; an empty result means the code cannot be converted.",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *ISBNInput) (*ConvertOutput, error) {
		converted := isbn.Convert(input.ISBN)
		var err error
		if converted == "" {
			err = isbn.ErrMalformed
		}
		observe(OperationConvert, err)

		resp := &ConvertOutput{}
		resp.Body = Conversion{
			ISBN:      input.ISBN,
			Converted: converted,
			Kind:      isbn.KindOf(converted),
		}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "NormalizeISBN",
		Method:      "POST",
		Path:        "/v1/isbn/normalize",
		Summary:     "Normalize an ISBN",
		Description: "Remove hyphens and spaces from an ISBN",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
		normalized, err := isbn.Normalize(input.Body.ISBN)
		observe(OperationNormalize, err)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}

		resp := &NormalizeOutput{}
		resp.Body.Normalized = normalized
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "BookURL",
		Method:      "POST",
		Path:        "/v1/isbn/url",
		Summary:     "Build a book URL",
		Description: "Build a retailer URL from a valid ISBN, using its ISBN10 form",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *BookURLInput) (*BookURLOutput, error) {
		baseURL := input.Body.BaseURL
		if baseURL == "" {
			baseURL = cfg.BookBaseURL
		}

		url, err := isbn.BookURL(baseURL, input.Body.ISBN)
		observe(OperationURL, err)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}

		resp := &BookURLOutput{}
		resp.Body.URL = url
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetStatistics",
		Method:      "GET",
		Path:        "/v1/statistics",
		Summary:     "Get statistics",
		Description: "Get per-operation counters since the server started",
		Tags:        []string{"Statistics"},
		Security:    []map[string][]string{{bearerScheme: {}}},
	}, func(ctx context.Context, input *struct{}) (*StatsOutput, error) {
		return &StatsOutput{
			Body: stats.GetStatsInstance().Snapshot(),
		}, nil
	})
}
