package repositories

// Repositories holds all the store instances. Each store is an owned,
// injected object; nothing in the application reaches storage any other
// way.
type Repositories struct {
	StudentRepository *StudentRepository
	NoticeRepository  *NoticeRepository
	FormRepository    *FormRepository
	TicketRepository  *TicketRepository
}

// NewRepositories initializes all stores empty; seeding happens at
// bootstrap.
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(),
		NoticeRepository:  NewNoticeRepository(),
		FormRepository:    NewFormRepository(),
		TicketRepository:  NewTicketRepository(),
	}
}
