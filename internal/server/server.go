package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за
// обработку конкретных сущностей: нормализацию номера и сессии формы.
type Server struct {
	PhoneServer
	SessionServer
}

func NewServer(
	phoneServer PhoneServer,
	sessionServer SessionServer,
) Server {
	return Server{
		PhoneServer:   phoneServer,
		SessionServer: sessionServer,
	}
}
