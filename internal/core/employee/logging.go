package employee

import (
	"io"

	"github.com/sirupsen/logrus"
)

func loggerOrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func employeeFields(e *Employee) logrus.Fields {
	return logrus.Fields{
		"employee_id":   e.ID,
		"employee_name": e.FullName(),
	}
}
