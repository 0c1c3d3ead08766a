// Package seed loads the portal's default data set into the in-memory store
// at startup. The records mirror the data the college ran the portal with.
package seed

import (
	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/repositories"
)

// CreateDefaultData fills the repositories with the default courses,
// registrations, FAQ entries, announcements and contact info.
func CreateDefaultData(repos *repositories.Repositories, lgr zerolog.Logger) {
	for _, c := range defaultCourses() {
		repos.Courses.Load(c)
	}
	for _, r := range defaultRegistrations() {
		repos.Registrations.Load(r)
	}
	for _, f := range defaultFaqs() {
		repos.Faqs.Load(f)
	}
	for _, a := range defaultAnnouncements() {
		repos.Announcements.Load(a)
	}
	repos.Contact.Load(defaultContactInfo())

	lgr.Info().Msg("Default data seeded into in-memory store")
}

func defaultCourses() []models.Course {
	return []models.Course{
		{
			CourseID:            "C001",
			CourseName:          "การบริหารจัดการโรงพยาบาล",
			CourseGen:           "รุ่นที่ 15",
			Description:         "หลักสูตรพัฒนาทักษะการบริหารจัดการโรงพยาบาลสำหรับผู้บริหารระดับกลาง",
			StartDate:           "2025-03-15",
			EndDate:             "2026-03-20",
			RegistrationStart:   "2025-01-01",
			RegistrationEnd:     "2026-08-28",
			MaxParticipants:     50,
			CurrentParticipants: 35,
			Location:            "โรงแรมสยาม บางกอก",
			Instructor:          "ดร.สมชาย ใจดี",
			Status:              models.AdminStatusActive,
		},
		{
			CourseID:            "C002",
			CourseName:          "นโยบายสาธารณสุขแห่งชาติ",
			CourseGen:           "รุ่นที่ 8",
			Description:         "หลักสูตรวิเคราะห์นโยบายสาธารณสุขและการวางแผนเชิงกลยุทธ์",
			StartDate:           "2025-04-10",
			EndDate:             "2025-04-15",
			RegistrationStart:   "2025-02-01",
			RegistrationEnd:     "2025-09-30",
			MaxParticipants:     40,
			CurrentParticipants: 28,
			Location:            "ศูนย์ฝึกอบรมกระทรวงสาธารณสุข",
			Instructor:          "นางสาวสุภาพร แสงทอง",
			Status:              models.AdminStatusActive,
		},
		{
			CourseID:            "C003",
			CourseName:          "การจัดการทรัพยากรบุคคลในหน่วยงานสาธารณสุข",
			CourseGen:           "รุ่นที่ 12",
			Description:         "พัฒนาทักษะการบริหารทรัพยากรบุคคลในองค์กรภาครัฐ",
			StartDate:           "2025-11-05",
			EndDate:             "2026-11-10",
			RegistrationStart:   "2025-10-01",
			RegistrationEnd:     "2026-10-30",
			MaxParticipants:     35,
			CurrentParticipants: 15,
			Location:            "โรงแรมเซ็นทารา แกรนด์ บางกอก",
			Instructor:          "ผศ.ดร.วิชัย ทองคำ",
			Status:              models.AdminStatusUpcoming,
		},
		{
			CourseID:            "C004",
			CourseName:          "การเงินและการคลังสำหรับผู้บริหาร",
			CourseGen:           "รุ่นที่ 5",
			Description:         "หลักสูตรพื้นฐานด้านการเงินและการคลังสำหรับโรงพยาบาล",
			StartDate:           "2024-11-10",
			EndDate:             "2024-11-15",
			RegistrationStart:   "2024-09-01",
			RegistrationEnd:     "2024-10-15",
			MaxParticipants:     30,
			CurrentParticipants: 30,
			Location:            "ออนไลน์ผ่าน Zoom",
			Instructor:          "รศ.ดร. สุดา การเงิน",
			Status:              models.AdminStatusClosed,
		},
	}
}

func defaultRegistrations() []models.Registration {
	return []models.Registration{
		{
			RegistrationID:   "R001",
			CourseID:         "C001",
			CourseName:       "การบริหารจัดการโรงพยาบาล",
			FirstName:        "สมศักดิ์",
			LastName:         "เจริญผล",
			IDCard:           "1-2345-67890-12-3",
			BirthDate:        "1985-05-15",
			Phone:            "081-234-5678",
			Email:            "somsak@example.com",
			Organization:     "โรงพยาบาลนครราชสีมา",
			Position:         "ผู้อำนวยการฝ่ายบริหาร",
			Address:          "123 ถนนสุขภาพ ตำบลในเมือง อำเภอเมือง จังหวัดนครราชสีมา 30000",
			StudentID:        "60123456789",
			RegistrationDate: "2025-01-15",
			Status:           models.RegistrationConfirmed,
		},
		{
			RegistrationID:   "R002",
			CourseID:         "C001",
			CourseName:       "การบริหารจัดการโรงพยาบาล",
			FirstName:        "กนกวรรณ",
			LastName:         "พงษ์ศรี",
			IDCard:           "2-3456-78901-23-4",
			BirthDate:        "1988-08-22",
			Phone:            "082-345-6789",
			Email:            "kanokwan@example.com",
			Organization:     "โรงพยาบาลสระบุรี",
			Position:         "หัวหน้าแผนกพยาบาล",
			Address:          "456 หมู่ 7 ตำบลบ้านใหม่ อำเภอเมือง จังหวัดสระบุรี 18000",
			StudentID:        "61987654321",
			RegistrationDate: "2025-01-20",
			Status:           models.RegistrationConfirmed,
		},
	}
}

func defaultFaqs() []models.Faq {
	return []models.Faq{
		{ID: "faq1", Question: "จะลงทะเบียนเข้าร่วมอบรมได้อย่างไร?", Answer: "ให้เลือกหลักสูตรที่ต้องการจากหน้า \"Courses\" จากนั้นคลิกปุ่ม \"ลงทะเบียน\" และกรอกข้อมูลตามแบบฟอร์มที่ปรากฏ"},
		{ID: "faq2", Question: "ต้องเตรียมเอกสารอะไรบ้างในการสมัคร?", Answer: "ต้องเตรียมสำเนาบัตรประชาชน และใบทะเบียนวุฒิการศึกษา ซึ่งจะต้องอัปโหลดในขั้นตอนการลงทะเบียน"},
		{ID: "faq3", Question: "สามารถยกเลิกการลงทะเบียนได้หรือไม่?", Answer: "สามารถยกเลิกได้ก่อนวันปิดรับสมัคร โดยติดต่อเจ้าหน้าที่ผ่านช่องทางที่ระบุในหน้า \"About\""},
		{ID: "faq4", Question: "จะตรวจสอบสถานะการลงทะเบียนได้อย่างไร?", Answer: "หลังจากลงทะเบียนสำเร็จ ท่านจะได้รับอีเมลยืนยันการสมัคร พร้อมลิงก์สำหรับตรวจสอบสถานะและดาวน์โหลดเอกสาร PDF"},
	}
}

func defaultAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "anno1", Title: "เปิดรับสมัครหลักสูตรใหม่ ประจำปี 2568", Content: "เปิดรับสมัครตั้งแต่วันที่ 1 มกราคม 2568 ถึง 31 มีนาคม 2568", PostedDate: "2024-12-01", Type: models.AnnouncementInfo},
		{ID: "anno2", Title: "แจ้งปรับปรุงระบบลงทะเบียนออนไลน์", Content: "ระบบได้รับการอัปเกรดเพื่อเพิ่มประสิทธิภาพในการใช้งาน", PostedDate: "2024-11-15", Type: models.AnnouncementSuccess},
		{ID: "anno3", Title: "ผลการคัดเลือกผู้เข้าอบรมหลักสูตร \"การบริหารจัดการโรงพยาบาล\"", Content: "สามารถตรวจสอบรายชื่อผู้ผ่านการคัดเลือกได้ที่นี่", PostedDate: "2024-11-10", Type: models.AnnouncementWarning},
	}
}

func defaultContactInfo() models.ContactInfo {
	return models.ContactInfo{
		Phone:   "02-XXX-XXXX",
		Email:   "admin@example.com",
		Address: "วิทยาลัยนักบริหารสาธารณสุข กระทรวงสาธารณสุข",
	}
}
