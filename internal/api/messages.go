package api

// Wire messages. The Russian strings are part of the client contract and
// must stay byte-identical across releases.
const (
	msgUserRegistered = "Пользователь зарегистрирован"
	msgLoginSuccess   = "Успешный вход"
	msgAccessGranted  = "Доступ разрешён"

	msgCredsRequired  = "Логин и пароль обязательны."
	msgBadCredentials = "Неверный логин или пароль."
	msgRegisterError  = "Ошибка регистрации пользователя"
	msgLoginError     = "Ошибка авторизации"

	msgNoToken  = "Токен не предоставлен"
	msgBadToken = "Неверный токен"

	msgLoginRequired   = "Логин обязателен."
	msgUserNotFound    = "Пользователь не найден."
	msgUserLookupError = "Ошибка получения пользователя"

	msgUserIDRequired  = "Не указан user_id."
	msgCategoriesError = "Ошибка получения категорий"

	msgFieldsRequired = "Не все поля заполнены."
	msgTxnsError      = "Ошибка получения транзакций"

	msgServerAlive = "Сервер работает. Текущее время: "
	msgDBError     = "Ошибка подключения к базе данных"
)
