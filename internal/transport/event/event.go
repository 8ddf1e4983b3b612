package event

import "strings"

// Request — входящий конверт события от внешнего шлюза
// (формат proxy-события API-шлюза: метод, путь, заголовки и сырое тело)
type Request struct {
	HTTPMethod string            `json:"httpMethod"`
	Path       string            `json:"path"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Response — исходящий конверт с результатом обработки
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Header возвращает значение заголовка без учета регистра имени:
// шлюзы не нормализуют регистр заголовков в конверте
func (r *Request) Header(name string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
