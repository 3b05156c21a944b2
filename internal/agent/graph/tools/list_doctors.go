package tools

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/model"
)

type ListDoctorsInput struct {
	Specialty     string `json:"specialty,omitempty"`
	AvailableOnly bool   `json:"available_only,omitempty"`
}

type ListDoctorsOutput struct {
	Doctors []model.DoctorSummary `json:"doctors"`
	Total   int                   `json:"total"`
}

func createListDoctorsTool(catalog model.Catalog) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolListDoctors,
			Desc: "List the clinic's Ayurvedic doctors with specialty, experience, consultation fee and availability. Use it when symptoms are serious or the user asks to consult a doctor.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"specialty": {
					Type: "string",
					Desc: "Optional keyword matched against the specialty, e.g. skin, diabetes, mental.",
				},
				"available_only": {
					Type: "boolean",
					Desc: "Only return doctors currently accepting bookings.",
				},
			}),
		},
		func(ctx context.Context, in *ListDoctorsInput) (*ListDoctorsOutput, error) {
			spec := strings.ToLower(strings.TrimSpace(in.Specialty))
			out := &ListDoctorsOutput{Doctors: []model.DoctorSummary{}}
			for _, d := range catalog.Doctors() {
				if in.AvailableOnly && !d.Available {
					continue
				}
				if spec != "" && !strings.Contains(strings.ToLower(d.Specialty), spec) {
					continue
				}
				out.Doctors = append(out.Doctors, model.DoctorSummary{
					ID:         d.ID,
					Name:       d.Name,
					Specialty:  d.Specialty,
					Experience: d.Experience,
					Price:      d.Price,
					Rating:     d.Rating,
					Available:  d.Available,
				})
			}
			out.Total = len(out.Doctors)
			return out, nil
		},
	)
}
