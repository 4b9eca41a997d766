package api

import (
	"encoding/json"
	"net/http"

	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
)

// SuccessJSON 成功回應直接輸出entity本體, 不包envelope (沿用前端既有契約)
func SuccessJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// ErrorJSON 依錯誤碼轉HTTP status, body固定 {"message": ...}
// Internal錯誤對外只給fallback訊息, 不洩漏內部細節
func ErrorJSON(w http.ResponseWriter, err error, fallback string) {
	ErrorMessage(w, apperr.HTTPStatus(err), apperr.MessageOf(err, fallback))
}

func ErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
