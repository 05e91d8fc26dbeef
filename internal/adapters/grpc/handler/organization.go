package handler

import (
	"context"
	"time"

	"github.com/ogurasousui/employee-org-analyzer/internal/adapters/grpc/organizationv1"
	"github.com/ogurasousui/employee-org-analyzer/internal/adapters/report"
	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// OrganizationGrpcHandler は OrganizationService の gRPC 実装です。
type OrganizationGrpcHandler struct {
	svc employee.UseCase
}

var _ organizationv1.OrganizationServiceServer = (*OrganizationGrpcHandler)(nil)

// NewOrganizationGrpcHandler は OrganizationGrpcHandler を生成します。
func NewOrganizationGrpcHandler(svc employee.UseCase) *OrganizationGrpcHandler {
	return &OrganizationGrpcHandler{svc: svc}
}

// Analyze は組織分析を実行し、結果を Struct として返します。
func (h *OrganizationGrpcHandler) Analyze(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.Analyze(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out, err := structpb.NewStruct(toStructFields(report.NewView(result)))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toStructFields(v report.View) map[string]any {
	roots := make([]any, 0, len(v.Roots))
	for _, r := range v.Roots {
		roots = append(roots, map[string]any{"id": r.ID, "name": r.Name})
	}

	orphans := make([]any, 0, len(v.Orphans))
	for _, o := range v.Orphans {
		orphans = append(orphans, map[string]any{"id": o.ID, "name": o.Name, "manager_id": o.ManagerID})
	}

	salary := make([]any, 0, len(v.SalaryFindings))
	for _, f := range v.SalaryFindings {
		salary = append(salary, map[string]any{
			"manager_id":   f.ManagerID,
			"manager_name": f.ManagerName,
			"kind":         f.Kind,
			"salary":       f.Salary,
			"average":      f.Average,
			"min":          f.Min,
			"max":          f.Max,
			"difference":   f.Difference,
		})
	}

	depth := make([]any, 0, len(v.DepthFindings))
	for _, f := range v.DepthFindings {
		depth = append(depth, map[string]any{
			"employee_id":    f.EmployeeID,
			"employee_name":  f.EmployeeName,
			"depth":          f.Depth,
			"excess":         f.Excess,
			"limit":          f.Limit,
			"cycle_detected": f.CycleDetected,
		})
	}

	return map[string]any{
		"run_id":          v.RunID,
		"generated_at":    v.GeneratedAt.UTC().Format(time.RFC3339),
		"employee_count":  v.EmployeeCount,
		"skipped_records": v.SkippedRecords,
		"roots":           roots,
		"orphans":         orphans,
		"salary_findings": salary,
		"depth_findings":  depth,
	}
}
