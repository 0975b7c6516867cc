package memory

import (
	"context"
	"fmt"
	"time"

	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
)

// SeedTasks loads the demo board into repo for one organization. Only
// the dev profile calls this; SQL-backed deployments start empty.
func SeedTasks(ctx context.Context, repo *TaskRepository, org string) error {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	samples := []domain.Task{
		{
			ID:          "task-1",
			Title:       "정보보안 정책 문서 작성",
			Description: "조직의 정보보안 정책을 수립하고 문서화합니다.",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			ControlID:   "A.5.1",
			Assignee:    "김보안",
			DueDate:     "2026-02-28",
			CreatedAt:   day(2026, 2, 1),
			UpdatedAt:   day(2026, 2, 10),
			Tags:        []string{"문서화", "정책"},
		},
		{
			ID:          "task-2",
			Title:       "접근 권한 검토",
			Description: "모든 시스템의 접근 권한을 검토하고 불필요한 권한을 제거합니다.",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityMedium,
			ControlID:   "A.5.15",
			Assignee:    "이관리",
			DueDate:     "2026-03-15",
			CreatedAt:   day(2026, 2, 5),
			UpdatedAt:   day(2026, 2, 5),
			Tags:        []string{"접근권한", "검토"},
		},
		{
			ID:          "task-3",
			Title:       "보안 인식 교육 계획 수립",
			Description: "전 직원 대상 보안 인식 교육 프로그램을 계획합니다.",
			Status:      domain.StatusReview,
			Priority:    domain.PriorityMedium,
			ControlID:   "A.6.3",
			Assignee:    "박교육",
			DueDate:     "2026-02-20",
			CreatedAt:   day(2026, 2, 3),
			UpdatedAt:   day(2026, 2, 12),
			Tags:        []string{"교육", "인식"},
		},
		{
			ID:          "task-4",
			Title:       "암호화 정책 검토",
			Description: "데이터 암호화 정책 및 구현 현황을 검토합니다.",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityHigh,
			ControlID:   "A.8.24",
			Assignee:    "최암호",
			DueDate:     "2026-02-10",
			CreatedAt:   day(2026, 1, 25),
			UpdatedAt:   day(2026, 2, 10),
			Tags:        []string{"암호화", "기술"},
		},
		{
			ID:          "task-5",
			Title:       "외부 공급업체 보안 평가",
			Description: "주요 외부 공급업체의 보안 수준을 평가합니다.",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityUrgent,
			ControlID:   "A.5.22",
			Assignee:    "정외부",
			DueDate:     "2026-02-25",
			CreatedAt:   day(2026, 2, 8),
			UpdatedAt:   day(2026, 2, 8),
			Tags:        []string{"공급망", "평가"},
		},
		{
			ID:          "task-6",
			Title:       "물리적 보안 점검",
			Description: "사무실 및 데이터센터의 물리적 보안 상태를 점검합니다.",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			ControlID:   "A.7.1",
			Assignee:    "강물리",
			DueDate:     "2026-03-01",
			CreatedAt:   day(2026, 2, 10),
			UpdatedAt:   day(2026, 2, 13),
			Tags:        []string{"물리보안", "점검"},
		},
		{
			ID:          "task-7",
			Title:       "취약점 스캔 결과 분석",
			Description: "최근 취약점 스캔 결과를 분석하고 조치 계획을 수립합니다.",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			ControlID:   "A.8.8",
			Assignee:    "송취약",
			DueDate:     "2026-02-18",
			CreatedAt:   day(2026, 2, 11),
			UpdatedAt:   day(2026, 2, 11),
			Tags:        []string{"취약점", "분석"},
		},
		{
			ID:          "task-8",
			Title:       "백업 절차 테스트",
			Description: "데이터 백업 및 복구 절차를 테스트합니다.",
			Status:      domain.StatusReview,
			Priority:    domain.PriorityMedium,
			ControlID:   "A.8.13",
			Assignee:    "윤백업",
			DueDate:     "2026-02-22",
			CreatedAt:   day(2026, 2, 6),
			UpdatedAt:   day(2026, 2, 13),
			Tags:        []string{"백업", "테스트"},
		},
	}
	for i := range samples {
		t := samples[i]
		t.ID = fmt.Sprintf("%s-%s", t.ID, org)
		t.OrganizationID = org
		if err := repo.Save(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}
