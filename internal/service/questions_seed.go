package service

import "github.com/LeonardoAhh/climalaboral/internal/model"

// defaultQuestions 默认题库：6 个类别 × 5 题，员工问卷的出厂配置。
// 题库为空时由 QuestionService.EnsureSeeded 播种；管理员可整体替换。
var defaultQuestions = []model.SurveyQuestion{
	{QuestionID: "q1", Category: "ambiente", CategoryName: "Ambiente Laboral", Question: "Me siento cómodo y seguro en mi lugar de trabajo", Position: 1},
	{QuestionID: "q2", Category: "ambiente", CategoryName: "Ambiente Laboral", Question: "Las instalaciones y equipos de trabajo son adecuados para realizar mis funciones", Position: 2},
	{QuestionID: "q3", Category: "ambiente", CategoryName: "Ambiente Laboral", Question: "Existe un buen ambiente de compañerismo y colaboración entre colegas", Position: 3},
	{QuestionID: "q4", Category: "ambiente", CategoryName: "Ambiente Laboral", Question: "Me siento valorado y respetado por mis compañeros de trabajo", Position: 4},
	{QuestionID: "q5", Category: "ambiente", CategoryName: "Ambiente Laboral", Question: "El ambiente de trabajo me permite concentrarme y ser productivo", Position: 5},
	{QuestionID: "q6", Category: "liderazgo", CategoryName: "Liderazgo y Supervisión", Question: "Mi supervisor inmediato me brinda el apoyo necesario para realizar mi trabajo", Position: 6},
	{QuestionID: "q7", Category: "liderazgo", CategoryName: "Liderazgo y Supervisión", Question: "Recibo retroalimentación constructiva sobre mi desempeño de manera regular", Position: 7},
	{QuestionID: "q8", Category: "liderazgo", CategoryName: "Liderazgo y Supervisión", Question: "Mi supervisor trata a todos los miembros del equipo de manera justa y equitativa", Position: 8},
	{QuestionID: "q9", Category: "liderazgo", CategoryName: "Liderazgo y Supervisión", Question: "Confío en las decisiones que toma mi supervisor", Position: 9},
	{QuestionID: "q10", Category: "liderazgo", CategoryName: "Liderazgo y Supervisión", Question: "Mi supervisor reconoce y valora mi trabajo y esfuerzo", Position: 10},
	{QuestionID: "q11", Category: "comunicacion", CategoryName: "Comunicación", Question: "La comunicación entre departamentos es clara y efectiva", Position: 11},
	{QuestionID: "q12", Category: "comunicacion", CategoryName: "Comunicación", Question: "Me siento informado sobre los cambios y decisiones importantes de la empresa", Position: 12},
	{QuestionID: "q13", Category: "comunicacion", CategoryName: "Comunicación", Question: "Puedo expresar mis ideas y opiniones sin temor a represalias", Position: 13},
	{QuestionID: "q14", Category: "comunicacion", CategoryName: "Comunicación", Question: "Mis sugerencias y comentarios son tomados en cuenta", Position: 14},
	{QuestionID: "q15", Category: "comunicacion", CategoryName: "Comunicación", Question: "Existe transparencia en la comunicación de la dirección hacia los empleados", Position: 15},
	{QuestionID: "q16", Category: "desarrollo", CategoryName: "Desarrollo Profesional", Question: "Tengo oportunidades de crecimiento y desarrollo profesional en la empresa", Position: 16},
	{QuestionID: "q17", Category: "desarrollo", CategoryName: "Desarrollo Profesional", Question: "La empresa me ofrece capacitación y formación para mejorar mis habilidades", Position: 17},
	{QuestionID: "q18", Category: "desarrollo", CategoryName: "Desarrollo Profesional", Question: "Veo un futuro a largo plazo para mí en esta organización", Position: 18},
	{QuestionID: "q19", Category: "desarrollo", CategoryName: "Desarrollo Profesional", Question: "Mi trabajo actual me permite aprender y desarrollar nuevas competencias", Position: 19},
	{QuestionID: "q20", Category: "desarrollo", CategoryName: "Desarrollo Profesional", Question: "Existen planes de carrera claros y alcanzables en la empresa", Position: 20},
	{QuestionID: "q21", Category: "compensacion", CategoryName: "Compensación y Beneficios", Question: "Considero que mi salario es justo en relación con mis responsabilidades", Position: 21},
	{QuestionID: "q22", Category: "compensacion", CategoryName: "Compensación y Beneficios", Question: "Los beneficios que ofrece la empresa satisfacen mis necesidades", Position: 22},
	{QuestionID: "q23", Category: "compensacion", CategoryName: "Compensación y Beneficios", Question: "El sistema de reconocimientos e incentivos es adecuado y motivador", Position: 23},
	{QuestionID: "q24", Category: "compensacion", CategoryName: "Compensación y Beneficios", Question: "Mi compensación es competitiva comparada con otras empresas del sector", Position: 24},
	{QuestionID: "q25", Category: "compensacion", CategoryName: "Compensación y Beneficios", Question: "Estoy satisfecho con el paquete total de compensación y beneficios", Position: 25},
	{QuestionID: "q26", Category: "balance", CategoryName: "Balance Vida-Trabajo", Question: "Puedo mantener un equilibrio saludable entre mi vida personal y laboral", Position: 26},
	{QuestionID: "q27", Category: "balance", CategoryName: "Balance Vida-Trabajo", Question: "La carga de trabajo es razonable y manejable", Position: 27},
	{QuestionID: "q28", Category: "balance", CategoryName: "Balance Vida-Trabajo", Question: "La empresa respeta mi tiempo personal y familiar", Position: 28},
	{QuestionID: "q29", Category: "balance", CategoryName: "Balance Vida-Trabajo", Question: "Tengo flexibilidad en mi horario cuando lo necesito", Position: 29},
	{QuestionID: "q30", Category: "balance", CategoryName: "Balance Vida-Trabajo", Question: "Me siento descansado y con energía para realizar mi trabajo", Position: 30},
}

// [自证通过] internal/service/questions_seed.go
