package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-core/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSubmissions = errors.New("该课程暂无提交记录")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩单导出为 Excel (.xlsx)，按课程汇总全部评估的提交与成绩
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportGrades 导出课程成绩单为 Excel
	ExportGrades(ctx context.Context, courseID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportGrades — 导出课程成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "成绩单"
//   - 表头: | 学生 | 邮箱 | 评估 | 提交时间 | 成绩 | 评语 |
//   - 未评分提交的成绩列显示 "-"
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportGrades(ctx context.Context, courseID string) (*bytes.Buffer, string, error) {
	// 1. 查询课程
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 查询课程下的全部提交
	subs, err := s.repo.Submission.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询提交记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(subs) == 0 {
		return nil, "", ErrExportNoSubmissions
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩单"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 26)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 8)
	f.SetColWidth(sheetName, "F", "F", 32)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (%s) — 成绩单", course.Name, course.Code))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	headers := []string{"学生", "邮箱", "评估", "提交时间", "成绩", "评语"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, row), h)
	}

	// 数据行
	row = 3
	for i := range subs {
		sub := &subs[i]

		studentName, studentEmail := "未知学生", "-"
		if sub.Student != nil {
			studentName = sub.Student.Name
			studentEmail = sub.Student.Email
		}
		evalTitle := "-"
		if sub.Evaluation != nil {
			evalTitle = sub.Evaluation.Title
		}

		f.SetCellValue(sheetName, cell("A", row), studentName)
		f.SetCellValue(sheetName, cell("B", row), studentEmail)
		f.SetCellValue(sheetName, cell("C", row), evalTitle)
		f.SetCellValue(sheetName, cell("D", row), sub.SubmittedAt.Format("2006-01-02 15:04"))
		if sub.Graded() {
			f.SetCellValue(sheetName, cell("E", row), *sub.Score)
		} else {
			f.SetCellValue(sheetName, cell("E", row), "-")
		}
		f.SetCellValue(sheetName, cell("F", row), sub.Comment)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("成绩单_%s.xlsx", course.Code)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
