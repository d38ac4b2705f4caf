package purviewcfg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfig_Placeholders(t *testing.T) {
	var tests = []struct {
		name  string
		input Config
		want  []string
	}{
		{
			name: "all placeholders",
			input: Config{
				TenantID:     DefaultTenantID,
				ClientID:     DefaultClientID,
				ClientSecret: DefaultClientSecret,
			},
			want: []string{azureTenantID, azureClientID, azureClientSecret},
		},
		{
			name: "client secret placeholder",
			input: Config{
				TenantID:     _testTenantID,
				ClientID:     _testClientID,
				ClientSecret: DefaultClientSecret,
			},
			want: []string{azureClientSecret},
		},
		{
			name: "no placeholders",
			input: Config{
				TenantID:     _testTenantID,
				ClientID:     _testClientID,
				ClientSecret: _testClientSecret,
			},
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.input.Placeholders()

			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Placeholders() = unexpected result (-want +got)\n%s\n", diff)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		TenantID:       _testTenantID,
		ClientID:       _testClientID,
		ClientSecret:   _testClientSecret,
		Account:        DefaultAccount,
		EntityGUID:     DefaultEntityGUID,
		Classification: DefaultClassification,
	}

	var tests = []struct {
		name    string
		input   func() Config
		wantErr []error
	}{
		{
			name: "valid",
			input: func() Config {
				return valid
			},
		},
		{
			name: "defaults",
			input: func() Config {
				cfg, _ := Load(WithLookupEnv(func(string) (string, bool) { return "", false }))
				return cfg
			},
			wantErr: []error{ErrPlaceholder, ErrPlaceholder, ErrPlaceholder},
		},
		{
			name: "invalid tenant and client ID",
			input: func() Config {
				cfg := valid
				cfg.TenantID = "1234"
				cfg.ClientID = "{" + _testClientID + "}"
				return cfg
			},
			wantErr: []error{ErrInvalidTenantID, ErrInvalidClientID},
		},
		{
			name: "empty credentials",
			input: func() Config {
				cfg := valid
				cfg.TenantID, cfg.ClientID, cfg.ClientSecret = "", "", ""
				return cfg
			},
			wantErr: []error{ErrInvalidTenantID, ErrInvalidClientID, ErrMissingClientSecret},
		},
		{
			name: "invalid account, entity GUID and classification",
			input: func() Config {
				cfg := valid
				cfg.Account = "-account"
				cfg.EntityGUID = "entity"
				cfg.Classification = ""
				return cfg
			},
			wantErr: []error{ErrInvalidAccount, ErrInvalidEntityGUID, ErrMissingClassification},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gotErr := test.input().Validate()

			if len(test.wantErr) == 0 {
				if gotErr != nil {
					t.Errorf("Validate() = unexpected error: %v\n", gotErr)
				}
				return
			}

			var e *Error
			if !errors.As(gotErr, &e) {
				t.Fatalf("Validate() = unexpected error type, want: *Error, got: %T\n", gotErr)
			}
			got := e.Errors()
			if len(test.wantErr) != len(got) {
				t.Fatalf("Validate() = unexpected number of errors, want: %d, got: %d\n%v\n", len(test.wantErr), len(got), gotErr)
			}
			for i := range test.wantErr {
				if !errors.Is(got[i], test.wantErr[i]) {
					t.Errorf("Validate() = unexpected error, want: %v, got: %v\n", test.wantErr[i], got[i])
				}
			}
		})
	}
}

func TestValidGUID(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid", input: _testTenantID, want: true},
		{name: "entity default", input: DefaultEntityGUID, want: true},
		{name: "upper case", input: "B9B2BD4B-7F0E-4A54-9A2E-4B8F2C6F8C11", want: true},
		{name: "braces", input: "{" + _testTenantID + "}", want: false},
		{name: "no hyphens", input: "b9b2bd4b7f0e4a549a2e4b8f2c6f8c11", want: false},
		{name: "placeholder", input: DefaultTenantID, want: false},
		{name: "empty", input: "", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := validGUID(test.input)

			if test.want != got {
				t.Errorf("validGUID(%q) = unexpected result, want: %v, got: %v\n", test.input, test.want, got)
			}
		})
	}
}
