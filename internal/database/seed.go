package database

import (
	"github.com/sman1gebog/web-core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Seed creates the default admin account and section content rows when their
// tables are empty. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedSections(db, &models.ProfileContent{}, defaultProfileSections()); err != nil {
		return err
	}
	return seedSections(db, &models.PPDBContent{}, defaultPPDBSections())
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username: defaultAdminUsername,
		Password: string(hash),
		Role:     "admin",
	}).Error
}

func seedSections(db *gorm.DB, model interface{}, sections map[string]string) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for key, content := range sections {
		row := map[string]interface{}{
			"section_key": key,
			"content":     datatypes.JSON(content),
		}
		if err := db.Model(model).Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func defaultProfileSections() map[string]string {
	return map[string]string{
		"visi_misi": `{"visi":"Terwujudnya peserta didik yang beriman, berprestasi, dan berwawasan lingkungan.","misi":["Menyelenggarakan pembelajaran yang aktif dan kreatif","Menumbuhkan semangat keunggulan akademik dan non-akademik","Membudayakan perilaku peduli lingkungan"]}`,
		"sejarah":   `{"paragraphs":["SMA Negeri 1 Gebog berdiri untuk melayani pendidikan menengah di wilayah Kudus bagian utara.","Sekolah terus berkembang dengan fasilitas dan program yang semakin lengkap."]}`,
	}
}

func defaultPPDBSections() map[string]string {
	return map[string]string{
		"timeline":     `{"items":[{"label":"Pendaftaran","date":"Juni"},{"label":"Seleksi","date":"Juli"},{"label":"Pengumuman","date":"Juli"}]}`,
		"requirements": `{"items":["Lulusan SMP/MTs atau sederajat","Mengisi formulir pendaftaran","Melampirkan fotokopi ijazah dan KK"]}`,
		"contact":      `{"phone":"(0291) 000000","email":"info@sman1gebog.sch.id","address":"Jl. Raya Gebog, Kudus"}`,
	}
}
