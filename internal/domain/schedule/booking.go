package schedule

// BookingRecord é a visão de um agendamento existente para fins de
// conflito. O motor nunca cria nem apaga registros: recebe a lista já
// filtrada por profissional+dia pelo colaborador de armazenamento.
type BookingRecord struct {
	ID       uint
	StaffID  uint
	Interval Interval

	// Blocking é calculado uma vez na borda do armazenamento:
	// qualquer status exceto cancelado/no-show bloqueia.
	Blocking bool
}
