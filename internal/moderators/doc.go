// Package moderators - премиум-расширение "менеджеры групп".
//
// Расширение добавляет членству в группе роль менеджера, компоненты
// UserTypeCell и UserTypeToggle для строки участника и проверку доступа
// к разделу people для менеджеров. Всё устанавливается явным вызовом
// InitializeExtensions при старте приложения.
package moderators
