package cases

import (
	"context"
	"time"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/dto/requests"
	"optizen-service/internal/pkg/dto/responses"
	"optizen-service/internal/pkg/exceptions"
	"optizen-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type caseUsecase struct {
	caseRepository    contracts.CaseRepository
	patientRepository contracts.PatientRepository
	caseResolver      contracts.CaseResolver
}

func NewCaseUsecase(
	caseRepository contracts.CaseRepository,
	patientRepository contracts.PatientRepository,
	caseResolver contracts.CaseResolver,
) contracts.CaseUsecase {
	return &caseUsecase{
		caseRepository:    caseRepository,
		patientRepository: patientRepository,
		caseResolver:      caseResolver,
	}
}

func (uc *caseUsecase) List(ctx context.Context, opts contracts.ListCasesOptions) ([]responses.Case, *responses.Pagination, error) {
	caseModels, total, err := uc.caseRepository.FindAll(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	enriched, err := uc.caseResolver.ResolveCases(ctx, caseModels)
	if err != nil {
		return nil, nil, err
	}

	paginationData := utils.BuildPaginationResponse(total, opts.Page, opts.Limit)
	return enriched, paginationData, nil
}

// Create persists a sanitized, validated payload and echoes the record back
// with its references resolved, so the caller immediately sees display
// names. Resolution happens only after a successful insert; a resolver
// failure can no longer leave partial state behind.
func (uc *caseUsecase) Create(ctx context.Context, request *requests.CreateCase) (*responses.Case, error) {
	patient, err := uc.patientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound()
	}

	caseModel := buildCaseModel(request)
	err = uc.caseRepository.Insert(ctx, caseModel)
	if err != nil {
		return nil, err
	}

	return uc.caseResolver.ResolveCase(ctx, caseModel)
}

func buildCaseModel(request *requests.CreateCase) *models.Case {
	status := request.Status
	if status == "" {
		status = constvars.CaseStatusActive
	}

	now := time.Now()
	caseModel := &models.Case{
		ID:              uuid.NewString(),
		CaseNo:          request.CaseNo,
		PatientID:       request.PatientID,
		EncounterDate:   request.EncounterDate,
		ChiefComplaint:  request.ChiefComplaint,
		History:         request.History,
		Findings:        request.Findings,
		TreatmentPlan:   request.TreatmentPlan,
		Diagnosis:       request.Diagnosis,
		Status:          status,
		ExaminationData: request.ExaminationData,
		Extra:           request.Extra,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if request.Complaints != nil {
		caseModel.Complaints = make([]models.Complaint, len(request.Complaints))
		for i, complaint := range request.Complaints {
			caseModel.Complaints[i] = models.Complaint{
				CategoryID:  complaint.CategoryID,
				ComplaintID: complaint.ComplaintID,
				Duration:    complaint.Duration,
				Eye:         complaint.Eye,
				Notes:       complaint.Notes,
			}
		}
	}

	if request.Treatments != nil {
		caseModel.Treatments = make([]models.Treatment, len(request.Treatments))
		for i, treatment := range request.Treatments {
			caseModel.Treatments[i] = models.Treatment{
				DrugID:   treatment.DrugID,
				DosageID: treatment.DosageID,
				RouteID:  treatment.RouteID,
				Duration: treatment.Duration,
				Eye:      treatment.Eye,
				Quantity: treatment.Quantity,
			}
		}
	}

	if request.DiagnosticTests != nil {
		caseModel.DiagnosticTests = make([]models.DiagnosticTest, len(request.DiagnosticTests))
		for i, test := range request.DiagnosticTests {
			caseModel.DiagnosticTests[i] = models.DiagnosticTest{
				TestID:  test.TestID,
				Eye:     test.Eye,
				Type:    test.Type,
				Problem: test.Problem,
				Notes:   test.Notes,
			}
		}
	}

	if request.VisionData != nil {
		caseModel.VisionData = &models.VisionData{
			Unaided: buildVisionReading(request.VisionData.Unaided),
			Pinhole: buildVisionReading(request.VisionData.Pinhole),
			Aided:   buildVisionReading(request.VisionData.Aided),
			Near:    buildVisionReading(request.VisionData.Near),
		}
	}

	return caseModel
}

func buildVisionReading(reading *requests.CreateVisionReading) *models.VisionReading {
	if reading == nil {
		return nil
	}
	return &models.VisionReading{
		Right: reading.Right,
		Left:  reading.Left,
	}
}
