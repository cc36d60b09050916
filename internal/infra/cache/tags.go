package cache

import "github.com/google/uuid"

// Tag vocabulary shared by the read side (which stamps entries) and the
// write side (which invalidates them). Writes touching a lesson flush that
// lesson's instructor and student tags; approval changes flush the
// instructor directory.
const (
	TagLessons     = "lessons"
	TagInstructors = "instructors"
)

func TagLessonsByInstructor(instructorID uuid.UUID) string {
	return "lessons:instructor:" + instructorID.String()
}

func TagLessonsByStudent(studentID uuid.UUID) string {
	return "lessons:student:" + studentID.String()
}
