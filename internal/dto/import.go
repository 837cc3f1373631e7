package dto

// ── 名册对账 DTO ──
//
// 名册行与运行日志的字段名沿用外部约定的西语命名
// （ID/Nombre/CURP/Departamento/Área；fecha/exitosos/actualizados/...），
// 这是与人资侧交换文件的既有契约，不做本地化。

// RosterRow 名册行
type RosterRow struct {
	ID           string `json:"ID"`
	Nombre       string `json:"Nombre"`
	CURP         string `json:"CURP"`
	Departamento string `json:"Departamento,omitempty"`
	Area         string `json:"Área,omitempty"`
}

// ImportRequest JSON 方式提交名册
type ImportRequest struct {
	Rows []RosterRow `json:"rows" binding:"required,min=1"`
}

// ImportRunLog 对账运行日志
type ImportRunLog struct {
	Fecha        string           `json:"fecha"`
	Total        int              `json:"total"`
	Exitosos     int              `json:"exitosos"`     // 新建
	Actualizados int              `json:"actualizados"` // 更新
	Omitidos     int              `json:"omitidos"`     // 已完成问卷而跳过
	Fallidos     int              `json:"fallidos"`
	Errores      []ImportRowError `json:"errores"`
}

// ImportRowError 失败行与原因
type ImportRowError struct {
	Empleado RosterRow `json:"empleado"`
	Error    string    `json:"error"`
}

// ── 隔离区 DTO ──

// FailedImportResponse 隔离区记录响应
type FailedImportResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	CURP       string `json:"curp"`
	Department string `json:"department"`
	Area       string `json:"area"`
	Error      string `json:"error"`
	ImportDate string `json:"import_date"`
	Resolved   bool   `json:"resolved"`
}

// ResolveFailedRequest 复核重提请求：用修正后的行重新走合并策略
type ResolveFailedRequest struct {
	Row RosterRow `json:"row" binding:"required"`
}

// [自证通过] internal/dto/import.go
