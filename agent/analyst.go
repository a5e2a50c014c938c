package agent

import (
	"context"
	"fmt"
	"strings"

	veedor "github.com/mrassano/veedor"
	"github.com/mrassano/veedor/docs"
	"github.com/mrassano/veedor/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the monthly bank-debt evolution of Argentine
			public officials: who owes what, to which institutions, and how the figures compare
			once inflation or the dollar is taken into account.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will refer to officials by name or nickname; check the registry first to
			resolve who they mean before asking for figures.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search for context
// the dataset cannot provide (news, office changes, economic events).
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher on Argentine politics and economy,
		aware of the latest news about public officials, banks and economic policy.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher on Argentine politics, public institutions and
			the economy. You leverage Google Search to ground your assertions.
			You can get the latest news too, and you know how to relate them to the
			user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the loaded dataset. All its
// tools answer from the dataset only, never from outside knowledge.
func NewAnalyst(d *veedor.Dataset) *Expert {

	lib := []Function{listEntities(d), debtSeries(d), milestones(d), profile(d)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has the full registry of public officials and
		their monthly bank-debt records. He can list and filter officials, aggregate debt
		series in nominal, inflation-adjusted or dollar terms, and report the milestones
		relevant to a set of officials.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of a registry of Argentine public officials
				and their monthly debt records with banks, as reported by the central bank.
				You know how to use the Tools to extract information from the registry.
				You are part of a team of experts; yours is everything about the loaded
				dataset. They might ask you questions in approximative language, pardon
				them and figure out what they meant.

				Officials are identified by slug. Use the listing tool to resolve names
				to slugs before asking for series or milestones.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return s, nil
}

func listEntities(d *veedor.Dataset) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ListOfficials",
			Description: `ListOfficials lists the public officials in the registry, with their
			slug, CUIT, position, district and party. All filters are optional substrings.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query":    {Type: genai.TypeString, Description: "Free-text filter on the official's name."},
					"position": {Type: genai.TypeString, Description: "Filter on the position, e.g. 'diputado'."},
					"district": {Type: genai.TypeString, Description: "Filter on the district, e.g. 'Buenos Aires'."},
					"party":    {Type: genai.TypeString, Description: "Filter on the party."},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the matching officials.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var vals [4]string
			for i, key := range []string{"query", "position", "district", "party"} {
				v, err := stringArg(args, key)
				if err != nil {
					return errResponse(id, "ListOfficials", err)
				}
				vals[i] = v
			}
			list := d.Registry.Filter(vals[0], vals[1], vals[2], vals[3])
			return okResponse(id, "ListOfficials", renderer.ListMarkdown(list))
		},
	}
}

func debtSeries(d *veedor.Dataset) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "DebtSeries",
			Description: `DebtSeries aggregates the monthly debt totals for up to four officials,
			one column per official, one row per month in which at least one of them reported debt.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"slugs": {
						Type:        genai.TypeString,
						Description: "Comma-separated official slugs, e.g. 'juan-perez,maria-gomez'.",
					},
					"mode": {
						Type: genai.TypeString,
						Description: `The valuation mode: 'nominal' (default), 'real' or 'usd'.

						` + must(docs.GetTopic("valuation")),
					},
				},
				Required: []string{"slugs"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of monthly totals per official.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sel, mode, err := parseSelection(d, args)
			if err != nil {
				return errResponse(id, "DebtSeries", err)
			}
			rows := d.Series(sel, mode)
			return okResponse(id, "DebtSeries", renderer.SeriesMarkdown(sel, rows, mode))
		},
	}
}

func milestones(d *veedor.Dataset) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Milestones",
			Description: `Milestones lists the dated events relevant to the given officials:
			economy-wide events, events tied to an office they held at the time, and their
			personal history entries.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"slugs": {
						Type:        genai.TypeString,
						Description: "Comma-separated official slugs.",
					},
				},
				Required: []string{"slugs"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of milestones, one row per month.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sel, _, err := parseSelection(d, args)
			if err != nil {
				return errResponse(id, "Milestones", err)
			}
			return okResponse(id, "Milestones", renderer.MilestonesMarkdown(d.Overlay(sel)))
		},
	}
}

func profile(d *veedor.Dataset) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Profile",
			Description: `Profile reports everything known about one official: identity,
			offices held over time, personal milestones and source documents.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"slug": {
						Type:        genai.TypeString,
						Description: "The official's slug.",
					},
				},
				Required: []string{"slug"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted profile of the official.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			slug, err := stringArg(args, "slug")
			if err != nil {
				return errResponse(id, "Profile", err)
			}
			e := d.Registry.BySlug(strings.TrimSpace(slug))
			if e == nil {
				return errResponse(id, "Profile", fmt.Errorf("unknown official %q", slug))
			}
			return okResponse(id, "Profile", renderer.ProfileMarkdown(renderer.NewProfile(e)))
		},
	}
}

// parseSelection resolves the 'slugs' and optional 'mode' arguments.
func parseSelection(d *veedor.Dataset, args map[string]any) (*veedor.Selection, veedor.ValuationMode, error) {
	slugs, err := stringArg(args, "slugs")
	if err != nil {
		return nil, veedor.Nominal, err
	}
	sel := veedor.DecodeSelection(d.Registry, slugs)
	if sel.Len() == 0 {
		return nil, veedor.Nominal, fmt.Errorf("no known official in %q, resolve slugs with ListOfficials first", slugs)
	}

	smode, err := stringArg(args, "mode")
	if err != nil {
		return nil, veedor.Nominal, err
	}
	if smode == "" {
		return sel, veedor.Nominal, nil
	}
	mode, err := veedor.ParseValuationMode(smode)
	if err != nil {
		return nil, veedor.Nominal, fmt.Errorf("argument 'mode' must be nominal, real or usd, got %q", smode)
	}
	return sel, mode, nil
}
