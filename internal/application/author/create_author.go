package author

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/pkg/form"
	"github.com/xiebiao/library/pkg/metrics"
)

// authorForm 作者表单规则
var authorForm = form.NewSchema(
	form.NewField("first_name",
		form.Trim(),
		form.Required("First name must be specified."),
		form.MaxLen(100, "First name is too long."),
		form.Alphanumeric("First name has non-alphanumeric characters."),
	),
	form.NewField("family_name",
		form.Trim(),
		form.Required("Family name must be specified."),
		form.MaxLen(100, "Family name is too long."),
		form.Alphanumeric("Family name has non-alphanumeric characters."),
	),
	form.NewField("date_of_birth", form.Trim(), form.OptionalDate("Invalid date of birth")),
	form.NewField("date_of_death", form.Trim(), form.OptionalDate("Invalid date of death")),
)

// CreateAuthorRequest 新建作者请求DTO(表单原始值)
type CreateAuthorRequest struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string // YYYY-MM-DD,可为空
	DateOfDeath string
}

func (r CreateAuthorRequest) values() map[string]string {
	return map[string]string{
		"first_name":    r.FirstName,
		"family_name":   r.FamilyName,
		"date_of_birth": r.DateOfBirth,
		"date_of_death": r.DateOfDeath,
	}
}

// CreateAuthorResult 新建作者结果
// 校验失败时Author为nil,Form携带清洗后的提交值和错误列表,用于回填表单
type CreateAuthorResult struct {
	Author *author.Author
	Form   *form.Result
}

// CreateAuthorUseCase 新建作者用例
type CreateAuthorUseCase struct {
	authorService author.Service
	logger        *zap.Logger
}

// NewCreateAuthorUseCase 创建新建作者用例
func NewCreateAuthorUseCase(authorService author.Service, logger *zap.Logger) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService, logger: logger}
}

// Execute 执行新建作者用例
// 校验错误不是失败:返回带错误的结果,err为nil
// 保存失败返回存储错误,不重试
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*CreateAuthorResult, error) {
	res := authorForm.Validate(req.values())
	if !res.Valid() {
		metrics.RecordValidationFailure("author")
		return &CreateAuthorResult{Form: res}, nil
	}

	a := author.NewAuthor(
		res.Value("first_name"),
		res.Value("family_name"),
		res.Date("date_of_birth"),
		res.Date("date_of_death"),
	)
	if err := uc.authorService.CreateAuthor(ctx, a); err != nil {
		return nil, err
	}

	metrics.RecordCreated("author")
	uc.logger.Info("作者已创建", zap.Uint("author_id", a.ID), zap.String("name", a.Name()))

	return &CreateAuthorResult{Author: a, Form: res}, nil
}
