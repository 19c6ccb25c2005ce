package utils

import (
	"daily-journal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeSaveEntryRequest(input *requests.SaveEntry) {
	input.Content = strings.TrimSpace(input.Content)
	input.Category = strings.TrimSpace(strings.ToLower(input.Category))
	input.EntryDate = strings.TrimSpace(input.EntryDate)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.Avatar = strings.TrimSpace(input.Avatar)
}

func SanitizeSendEncouragementRequest(input *requests.SendEncouragement) {
	input.Name = strings.TrimSpace(input.Name)
	input.Message = strings.TrimSpace(input.Message)
	input.Token = strings.TrimSpace(input.Token)
}
