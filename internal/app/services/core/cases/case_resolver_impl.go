package cases

import (
	"context"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/dto/responses"
	"optizen-service/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// caseResolver is the reference resolution engine. It gathers the distinct
// identifiers a batch of cases needs, grouped by master-data category rather
// than by field, so every eye field across complaints, treatments, tests and
// surgeries costs one eye_selection lookup for the whole batch. One
// CategoryResolver call is issued per distinct category, fanned out
// concurrently. The engine reads only the raw reference fields and builds
// the enriched copies from scratch, never mutating the input.
type caseResolver struct {
	categoryResolver contracts.CategoryResolver
}

func NewCaseResolver(categoryResolver contracts.CategoryResolver) contracts.CaseResolver {
	return &caseResolver{categoryResolver: categoryResolver}
}

func (r *caseResolver) ResolveCase(ctx context.Context, caseModel *models.Case) (*responses.Case, error) {
	resolved, err := r.ResolveCases(ctx, []models.Case{*caseModel})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func (r *caseResolver) ResolveCases(ctx context.Context, caseModels []models.Case) ([]responses.Case, error) {
	refs := collectReferences(caseModels)
	names, err := r.resolveAllCategories(ctx, refs)
	if err != nil {
		return nil, err
	}

	enriched := make([]responses.Case, len(caseModels))
	for i := range caseModels {
		enriched[i] = buildCaseResponse(&caseModels[i], names)
	}
	return enriched, nil
}

// collectReferences extracts every reference-bearing identifier of the batch
// into category-keyed id lists. Only UUID-shaped surgery names are treated
// as references; everything else in that field is display-ready text.
func collectReferences(caseModels []models.Case) map[string][]string {
	refs := make(map[string][]string)
	add := func(category, id string) {
		if id == "" {
			return
		}
		refs[category] = append(refs[category], id)
	}

	for i := range caseModels {
		caseModel := &caseModels[i]
		for _, complaint := range caseModel.Complaints {
			add(constvars.CategoryComplaints, complaint.ComplaintID)
			add(constvars.CategoryComplaintCategories, complaint.CategoryID)
			add(constvars.CategoryEyeSelection, complaint.Eye)
		}
		for _, treatment := range caseModel.Treatments {
			add(constvars.CategoryMedicines, treatment.DrugID)
			add(constvars.CategoryDosages, treatment.DosageID)
			add(constvars.CategoryRoutes, treatment.RouteID)
			add(constvars.CategoryEyeSelection, treatment.Eye)
		}
		for _, test := range caseModel.DiagnosticTests {
			add(constvars.CategoryDiagnosticTests, test.TestID)
			add(constvars.CategoryEyeSelection, test.Eye)
		}
		for _, surgery := range surgeriesOf(caseModel) {
			if utils.IsUUID(surgery.SurgeryName) {
				add(constvars.CategorySurgeries, surgery.SurgeryName)
			}
			add(constvars.CategoryAnesthesiaTypes, surgery.Anesthesia)
			add(constvars.CategoryEyeSelection, surgery.Eye)
		}
	}
	return refs
}

// resolveAllCategories fans out one resolver call per category. Any gateway
// failure aborts the whole batch; a partial result with silently-wrong names
// is worse than a failed request.
func (r *caseResolver) resolveAllCategories(ctx context.Context, refs map[string][]string) (map[string]map[string]string, error) {
	categories := make([]string, 0, len(refs))
	for category := range refs {
		categories = append(categories, category)
	}

	results := make([]map[string]string, len(categories))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			names, err := r.categoryResolver.Resolve(groupCtx, category, refs[category])
			if err != nil {
				return err
			}
			results[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]map[string]string, len(categories))
	for i, category := range categories {
		names[category] = results[i]
	}
	return names, nil
}

func buildCaseResponse(caseModel *models.Case, names map[string]map[string]string) responses.Case {
	response := responses.Case{
		ID:              caseModel.ID,
		CaseNo:          caseModel.CaseNo,
		PatientID:       caseModel.PatientID,
		EncounterDate:   caseModel.EncounterDate,
		ChiefComplaint:  caseModel.ChiefComplaint,
		History:         caseModel.History,
		Findings:        caseModel.Findings,
		TreatmentPlan:   caseModel.TreatmentPlan,
		Diagnosis:       caseModel.Diagnosis,
		Status:          caseModel.Status,
		VisionData:      caseModel.VisionData,
		Extra:           caseModel.Extra,
		CreatedAt:       caseModel.CreatedAt,
		UpdatedAt:       caseModel.UpdatedAt,
		ExaminationData: buildExaminationData(caseModel, names),
	}

	if caseModel.Complaints != nil {
		response.Complaints = make([]responses.Complaint, len(caseModel.Complaints))
		for i, complaint := range caseModel.Complaints {
			response.Complaints[i] = responses.Complaint{
				CategoryID:    complaint.CategoryID,
				CategoryName:  optionalName(names, constvars.CategoryComplaintCategories, complaint.CategoryID),
				ComplaintID:   complaint.ComplaintID,
				ComplaintName: mandatoryName(names, constvars.CategoryComplaints, complaint.ComplaintID),
				Duration:      complaint.Duration,
				Eye:           complaint.Eye,
				EyeName:       optionalName(names, constvars.CategoryEyeSelection, complaint.Eye),
				Notes:         complaint.Notes,
			}
		}
	}

	if caseModel.Treatments != nil {
		response.Treatments = make([]responses.Treatment, len(caseModel.Treatments))
		for i, treatment := range caseModel.Treatments {
			response.Treatments[i] = responses.Treatment{
				DrugID:     treatment.DrugID,
				DrugName:   mandatoryName(names, constvars.CategoryMedicines, treatment.DrugID),
				DosageID:   treatment.DosageID,
				DosageName: optionalName(names, constvars.CategoryDosages, treatment.DosageID),
				RouteID:    treatment.RouteID,
				RouteName:  optionalName(names, constvars.CategoryRoutes, treatment.RouteID),
				Duration:   treatment.Duration,
				Eye:        treatment.Eye,
				EyeName:    optionalName(names, constvars.CategoryEyeSelection, treatment.Eye),
				Quantity:   treatment.Quantity,
			}
		}
	}

	if caseModel.DiagnosticTests != nil {
		response.DiagnosticTests = make([]responses.DiagnosticTest, len(caseModel.DiagnosticTests))
		for i, test := range caseModel.DiagnosticTests {
			response.DiagnosticTests[i] = responses.DiagnosticTest{
				TestID:   test.TestID,
				TestName: mandatoryName(names, constvars.CategoryDiagnosticTests, test.TestID),
				Eye:      test.Eye,
				EyeName:  optionalName(names, constvars.CategoryEyeSelection, test.Eye),
				Type:     test.Type,
				Problem:  test.Problem,
				Notes:    test.Notes,
			}
		}
	}

	return response
}

// buildExaminationData copies the free-form bag, swapping the surgeries key
// for its enriched form and leaving every other key untouched.
func buildExaminationData(caseModel *models.Case, names map[string]map[string]string) map[string]interface{} {
	if caseModel.ExaminationData == nil {
		return nil
	}

	bag := make(map[string]interface{}, len(caseModel.ExaminationData))
	for key, value := range caseModel.ExaminationData {
		bag[key] = value
	}

	surgeries := surgeriesOf(caseModel)
	if surgeries == nil {
		return bag
	}

	enriched := make([]responses.Surgery, len(surgeries))
	for i, surgery := range surgeries {
		enriched[i] = buildSurgeryResponse(surgery, names)
	}
	bag[constvars.ExaminationDataSurgeriesKey] = enriched
	return bag
}

// buildSurgeryResponse handles the dual-purpose surgery_name field. A
// UUID-shaped value is a resolution candidate and keeps its original in
// surgery_name_original; any other value is already display-ready and passes
// through byte-identical.
func buildSurgeryResponse(surgery models.Surgery, names map[string]map[string]string) responses.Surgery {
	response := responses.Surgery{
		SurgeryName:    surgery.SurgeryName,
		Anesthesia:     surgery.Anesthesia,
		AnesthesiaName: optionalName(names, constvars.CategoryAnesthesiaTypes, surgery.Anesthesia),
		Eye:            surgery.Eye,
		EyeName:        optionalName(names, constvars.CategoryEyeSelection, surgery.Eye),
	}

	if utils.IsUUID(surgery.SurgeryName) {
		response.SurgeryNameOriginal = surgery.SurgeryName
		if name, found := names[constvars.CategorySurgeries][surgery.SurgeryName]; found {
			response.SurgeryName = name
		}
	}
	return response
}

func surgeriesOf(caseModel *models.Case) []models.Surgery {
	if caseModel.ExaminationData == nil {
		return nil
	}
	return utils.CoerceSurgeries(caseModel.ExaminationData[constvars.ExaminationDataSurgeriesKey])
}

// mandatoryName is the display fallback for structurally mandatory
// references: a miss renders as "Unknown", never as an error.
func mandatoryName(names map[string]map[string]string, category, id string) string {
	if name, found := names[category][id]; found {
		return name
	}
	return constvars.DisplayNameUnknown
}

// optionalName leaves absent references blank and falls back to "Unknown"
// only when an id is present but no longer known to the master data.
func optionalName(names map[string]map[string]string, category, id string) string {
	if id == "" {
		return ""
	}
	if name, found := names[category][id]; found {
		return name
	}
	return constvars.DisplayNameUnknown
}
