package controllers

// CustomError carries a client-safe message; internal detail stays in the logs.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrSlotFull           = &CustomError{"Ce créneau est complet"}
	ErrReservationFailed  = &CustomError{"Erreur lors de la réservation"}
	ErrAvailabilityFailed = &CustomError{"Erreur lors de la vérification des disponibilités"}
	ErrPrivatisationFail  = &CustomError{"Erreur lors de l'envoi de la demande"}
	ErrContactFailed      = &CustomError{"Erreur lors de l'envoi du message"}
	ErrNewsletterFailed   = &CustomError{"Erreur lors de l'inscription"}
	ErrAlreadySubscribed  = &CustomError{"Cette adresse email est déjà inscrite"}
	ErrArticleNotFound    = &CustomError{"Article introuvable"}
)
